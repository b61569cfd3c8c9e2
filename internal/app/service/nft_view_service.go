package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/app/port"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"github.com/patrickmn/go-cache"
)

// NFTViewServiceImpl implements port.NFTViewService.
type NFTViewServiceImpl struct {
	executor   port.QueryExecutor
	builder    *ViewModelBuilder
	logger     port.Logger
	defaults   entity.PageRequest
	viewsCache *cache.Cache // nil когда кеш выключен
}

// NewNFTViewService creates a new instance of NFTViewServiceImpl.
// viewTTL <= 0 disables the view cache and every call hits OneSource.
func NewNFTViewService(
	executor port.QueryExecutor,
	builder *ViewModelBuilder,
	l port.Logger,
	defaults entity.PageRequest,
	viewTTL time.Duration,
	cleanupInterval time.Duration,
) port.NFTViewService {
	s := &NFTViewServiceImpl{
		executor: executor,
		builder:  builder,
		logger:   l,
		defaults: defaults,
	}
	if viewTTL > 0 {
		s.viewsCache = cache.New(viewTTL, cleanupInterval)
	}
	return s
}

// DefaultRequest implements port.NFTViewService.
func (s *NFTViewServiceImpl) DefaultRequest() entity.PageRequest {
	return s.defaults
}

// GetPage implements port.NFTViewService.
func (s *NFTViewServiceImpl) GetPage(ctx context.Context, req entity.PageRequest) (*entity.PageView, error) {
	normalized, err := NormalizeRequest(req)
	if err != nil {
		metrics.ObservePageBuild(metrics.ResultInvalid)
		s.logger.Warn("Rejected page request", "contract", req.Contract, "token_id", req.TokenID, "owner", req.Owner, "error", err)
		return nil, err
	}

	key := cacheKey(normalized)
	if s.viewsCache != nil {
		if cached, ok := s.viewsCache.Get(key); ok {
			metrics.ObservePageBuild(metrics.ResultCached)
			s.logger.Debug("Returning cached page view", "key", key)
			return cached.(*entity.PageView), nil
		}
	}

	res, err := s.executor.Fetch(ctx, normalized)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.ObservePageBuild(metrics.ResultNotFound)
		} else {
			metrics.ObservePageBuild(metrics.ResultFailed)
		}
		return nil, err
	}

	view := s.builder.Build(res, normalized.Owner)
	metrics.ObservePageBuild(metrics.ResultOK)

	if s.viewsCache != nil {
		s.viewsCache.Set(key, view, cache.DefaultExpiration)
	}
	s.logger.Info("Page view built",
		"contract", normalized.Contract,
		"token_id", normalized.TokenID,
		"balances", len(view.Balances),
		"image_shown", view.Token.ShowImage())
	return view, nil
}

// NormalizeRequest validates req and brings addresses to lower case, the form OneSource indexes them in.
func NormalizeRequest(req entity.PageRequest) (entity.PageRequest, error) {
	contract := strings.TrimSpace(req.Contract)
	if !common.IsHexAddress(contract) {
		return req, fmt.Errorf("%w: contract %q is not a valid address", entity.ErrInvalidRequest, req.Contract)
	}
	req.Contract = strings.ToLower(common.HexToAddress(contract).Hex())

	tokenID := strings.TrimSpace(req.TokenID)
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok || id.Sign() < 0 {
		return req, fmt.Errorf("%w: token id %q is not a non-negative integer", entity.ErrInvalidRequest, req.TokenID)
	}
	req.TokenID = id.String()

	owner := strings.TrimSpace(req.Owner)
	if owner != "" {
		if !common.IsHexAddress(owner) {
			return req, fmt.Errorf("%w: owner %q is not a valid address", entity.ErrInvalidRequest, req.Owner)
		}
		owner = strings.ToLower(common.HexToAddress(owner).Hex())
	}
	req.Owner = owner

	switch {
	case req.First == 0:
		req.First = entity.DefaultBalancesPageSize
	case req.First < 0 || req.First > entity.MaxBalancesPageSize:
		return req, fmt.Errorf("%w: first must be between 1 and %d", entity.ErrInvalidRequest, entity.MaxBalancesPageSize)
	}
	if req.Skip < 0 {
		return req, fmt.Errorf("%w: skip must not be negative", entity.ErrInvalidRequest)
	}
	return req, nil
}

func cacheKey(req entity.PageRequest) string {
	return fmt.Sprintf("%s_%s_%s_%d_%d", req.Contract, req.TokenID, req.Owner, req.First, req.Skip)
}
