package client

const imageFields = `
        status
        url
        contentType
        width
        height
        thumbnails {
          preset
          status
          url
          width
          height
          contentType
          createdAt
        }
        createdAt
        errorMsg`

const contractFields = `
        id
        type
        name
        symbol
        decimals`

// GetTokenQuery fetches one token with its image by contract + tokenID.
const GetTokenQuery = `query GetTokenWithImage($contract: ID!, $tokenID: ID!) {
  token(contract: $contract, tokenID: $tokenID) {
    contract {` + contractFields + `
    }
    tokenID
    tokenURI
    tokenURIStatus
    image {` + imageFields + `
    }
    createdAt
    createdBlock
  }
}`

// GetBalancesQuery fetches a page of balances held by owner, optionally limited to one contract.
const GetBalancesQuery = `query GetBalances($owner: ID!, $contract: String, $first: Int = 10, $skip: Int = 0) {
  balances(owner: $owner, contract: $contract, first: $first, skip: $skip) {
    count
    remaining
    cursor
    entries {
      owner
      contractType
      contract {` + contractFields + `
      }
      token {
        tokenID
        image {` + imageFields + `
        }
      }
      value
    }
  }
}`

const (
	TokenOperationName    = "GetTokenWithImage"
	BalancesOperationName = "GetBalances"
)

// Operation is one GraphQL document together with its variables.
type Operation struct {
	Name      string
	Query     string
	Variables map[string]any
}

// TokenOperation builds the GetTokenWithImage operation.
func TokenOperation(contract, tokenID string) Operation {
	return Operation{
		Name:  TokenOperationName,
		Query: GetTokenQuery,
		Variables: map[string]any{
			"contract": contract,
			"tokenID":  tokenID,
		},
	}
}

// BalancesOperation builds the GetBalances operation. An empty contract lists balances across all contracts.
func BalancesOperation(owner, contract string, first, skip int) Operation {
	vars := map[string]any{
		"owner": owner,
		"first": first,
		"skip":  skip,
	}
	if contract != "" {
		vars["contract"] = contract
	}
	return Operation{
		Name:      BalancesOperationName,
		Query:     GetBalancesQuery,
		Variables: vars,
	}
}
