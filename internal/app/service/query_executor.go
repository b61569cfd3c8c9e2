package service

import (
	"context"
	"fmt"
	"time"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/app/port"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/client"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"
	wire "github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/entity"

	"golang.org/x/sync/errgroup"
)

// QueryExecutorImpl implements port.QueryExecutor on top of a GraphQL client.
type QueryExecutorImpl struct {
	gql     client.GraphQLClient
	logger  port.Logger
	timeout time.Duration
}

// NewQueryExecutor creates a new instance of QueryExecutorImpl.
// timeout bounds the whole fan-out, 0 leaves it to the client.
func NewQueryExecutor(gql client.GraphQLClient, l port.Logger, timeout time.Duration) port.QueryExecutor {
	return &QueryExecutorImpl{
		gql:     gql,
		logger:  l,
		timeout: timeout,
	}
}

// Fetch implements port.QueryExecutor.
// Both queries run concurrently; if either fails the other result is discarded.
func (e *QueryExecutorImpl) Fetch(ctx context.Context, req entity.PageRequest) (*port.FetchResult, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var (
		tokenResp    wire.TokenResponse
		balancesResp wire.BalancesResponse
	)

	// Первая ошибка отменяет второй запрос через groupCtx
	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.gql.Do(groupCtx, client.TokenOperation(req.Contract, req.TokenID), &tokenResp); err != nil {
			return &entity.FetchError{Operation: client.TokenOperationName, Cause: err}
		}
		if err := tokenResp.Validate(); err != nil {
			return &entity.FetchError{Operation: client.TokenOperationName, Cause: err}
		}
		return nil
	})

	if req.WantsBalances() {
		g.Go(func() error {
			op := client.BalancesOperation(req.Owner, req.Contract, req.First, req.Skip)
			if err := e.gql.Do(groupCtx, op, &balancesResp); err != nil {
				return &entity.FetchError{Operation: client.BalancesOperationName, Cause: err}
			}
			if err := balancesResp.Validate(); err != nil {
				return &entity.FetchError{Operation: client.BalancesOperationName, Cause: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.Error("Error fetching NFT",
			"contract", req.Contract,
			"token_id", req.TokenID,
			"owner", req.Owner,
			"error", err)
		return nil, err
	}

	if tokenResp.Token == nil {
		e.logger.Warn("Token not found", "contract", req.Contract, "token_id", req.TokenID)
		return nil, fmt.Errorf("%w: contract %s token %s", entity.ErrNotFound, req.Contract, req.TokenID)
	}

	result := &port.FetchResult{Token: tokenResp.Token}
	if req.WantsBalances() {
		result.Balances = balancesResp.Balances
		if result.Balances == nil {
			result.Balances = &wire.BalancesPage{}
		}
	}

	e.logger.Debug("NFT data fetched",
		"contract", req.Contract,
		"token_id", req.TokenID,
		"balances_requested", req.WantsBalances())
	return result, nil
}
