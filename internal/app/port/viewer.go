package port

import (
	"context"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"
)

// NFTViewService defines the interface the rendering layer talks to.
type NFTViewService interface {
	// GetPage validates req, fetches the data and returns the render-ready view.
	GetPage(ctx context.Context, req entity.PageRequest) (*entity.PageView, error)

	// DefaultRequest returns the configured token/owner shown on the index page.
	DefaultRequest() entity.PageRequest
}
