package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ImageStatusOK is the only image status for which url and the other image fields can be trusted.
const ImageStatusOK = "OK"

// ContractInfo is the contract block shared by token and balance records.
type ContractInfo struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // ERC20, ERC721, ERC1155
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals *int   `json:"decimals"` // null для большинства NFT контрактов
}

// Thumbnail is a resized rendition of a token image tagged by a preset label.
type Thumbnail struct {
	Preset      string `json:"preset"`
	Status      string `json:"status"`
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"contentType"`
	CreatedAt   string `json:"createdAt"`
}

// ImageAsset describes the image OneSource fetched for a token.
// Everything except Status is only meaningful when Status == ImageStatusOK.
type ImageAsset struct {
	Status      string      `json:"status"`
	URL         string      `json:"url"`
	ContentType string      `json:"contentType"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
	CreatedAt   string      `json:"createdAt"`
	ErrorMsg    *string     `json:"errorMsg"`
}

// IsOK reports whether the image was fetched successfully.
func (i *ImageAsset) IsOK() bool {
	return i != nil && i.Status == ImageStatusOK
}

// Token is the record returned by the token(contract, tokenID) query.
type Token struct {
	Contract       *ContractInfo `json:"contract"`
	TokenID        string        `json:"tokenID"`
	TokenURI       string        `json:"tokenURI"`
	TokenURIStatus string        `json:"tokenURIStatus"`
	Image          *ImageAsset   `json:"image"`
	CreatedAt      string        `json:"createdAt"`
	CreatedBlock   int64         `json:"createdBlock"`
}

// BalanceToken is the token embedded into a balance entry.
type BalanceToken struct {
	TokenID string      `json:"tokenID"`
	Image   *ImageAsset `json:"image"`
}

// BalanceEntry is one row of the balances(owner, contract) query.
type BalanceEntry struct {
	Owner        string        `json:"owner"`
	ContractType string        `json:"contractType"`
	Contract     *ContractInfo `json:"contract"`
	Token        *BalanceToken `json:"token"`
	Value        string        `json:"value"` // строка: балансы не влезают в int64
}

// BalancesPage is the paginated balances record.
type BalancesPage struct {
	Count     int            `json:"count"`
	Remaining int            `json:"remaining"`
	Cursor    string         `json:"cursor"`
	Entries   []BalanceEntry `json:"entries"`
}

// TokenResponse is the data object of GetTokenWithImage.
type TokenResponse struct {
	Token *Token `json:"token"`
}

// BalancesResponse is the data object of GetBalances.
type BalancesResponse struct {
	Balances *BalancesPage `json:"balances"`
}

// Validate checks the fields the view model relies on. A nil token is not an error here:
// it means "not found" and is handled by the caller.
func (r *TokenResponse) Validate() error {
	if r.Token == nil {
		return nil
	}
	if r.Token.Contract == nil {
		return fmt.Errorf("%w: token.contract is missing", ErrMalformedResponse)
	}
	if strings.TrimSpace(r.Token.TokenID) == "" {
		return fmt.Errorf("%w: token.tokenID is missing", ErrMalformedResponse)
	}
	return nil
}

// Validate checks every balance entry. Missing balances object is treated as an empty page.
func (r *BalancesResponse) Validate() error {
	if r.Balances == nil {
		return nil
	}
	for i, e := range r.Balances.Entries {
		if e.Contract == nil {
			return fmt.Errorf("%w: balances.entries[%d].contract is missing", ErrMalformedResponse, i)
		}
		value, err := decimal.NewFromString(e.Value)
		if err != nil {
			return fmt.Errorf("%w: balances.entries[%d].value %q is not a decimal: %v", ErrMalformedResponse, i, e.Value, err)
		}
		if value.IsNegative() {
			return fmt.Errorf("%w: balances.entries[%d].value %q is negative", ErrMalformedResponse, i, e.Value)
		}
	}
	return nil
}
