package port

import (
	"context"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"
	wire "github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/entity"
)

// FetchResult holds the decoded responses of one page build.
type FetchResult struct {
	Token *wire.Token
	// Balances is nil when the request did not ask for balances.
	Balances *wire.BalancesPage
}

// QueryExecutor defines the interface for running the page queries.
type QueryExecutor interface {
	// Fetch runs the token query and, when the request has an owner, the balances query concurrently.
	// Any failure of either query is returned as a single *entity.FetchError.
	Fetch(ctx context.Context, req entity.PageRequest) (*FetchResult, error)
}
