package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/app/port"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

const pageTemplate = "page.html"

// APIErrorResponse is the body of every JSON error.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// pageData is what page.html is rendered with. Exactly one of View and Error is set,
// both empty means "no data found".
type pageData struct {
	View  *entity.PageView
	Error string
}

// NFTHandler обрабатывает HTTP запросы страницы NFT и JSON API.
type NFTHandler struct {
	viewService port.NFTViewService
	logger      port.Logger
}

// NewNFTHandler создает новый экземпляр NFTHandler.
func NewNFTHandler(vs port.NFTViewService, l port.Logger) *NFTHandler {
	return &NFTHandler{
		viewService: vs,
		logger:      l,
	}
}

// IndexHandler renders the page for the configured token and owner.
func (h *NFTHandler) IndexHandler(c *gin.Context) {
	h.renderPage(c, h.viewService.DefaultRequest())
}

// TokenPageHandler renders the page for /tokens/:contract/:tokenID.
func (h *NFTHandler) TokenPageHandler(c *gin.Context) {
	req, err := requestFromContext(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, pageTemplate, pageData{Error: err.Error()})
		return
	}
	h.renderPage(c, req)
}

// GetTokenHandler returns the PageView as JSON.
func (h *NFTHandler) GetTokenHandler(c *gin.Context) {
	req, err := requestFromContext(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.viewService.GetPage(c.Request.Context(), req)
	if err != nil {
		status, msg := classifyError(err)
		c.JSON(status, APIErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *NFTHandler) renderPage(c *gin.Context, req entity.PageRequest) {
	view, err := h.viewService.GetPage(c.Request.Context(), req)
	if err != nil {
		status, msg := classifyError(err)
		if status == http.StatusNotFound {
			c.HTML(status, pageTemplate, pageData{})
			return
		}
		c.HTML(status, pageTemplate, pageData{Error: msg})
		return
	}
	c.HTML(http.StatusOK, pageTemplate, pageData{View: view})
}

// classifyError maps service errors to a status and the message users are allowed to see.
// Fetch failure details stay in the logs.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, entity.ErrNotFound.Error()
	case errors.Is(err, entity.ErrFetchFailed):
		return http.StatusBadGateway, "Failed to fetch NFT"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// requestFromContext собирает PageRequest из пути и query параметров (owner, first, skip).
func requestFromContext(c *gin.Context) (entity.PageRequest, error) {
	req := entity.PageRequest{
		Contract: c.Param("contract"),
		TokenID:  c.Param("tokenID"),
		Owner:    c.Query("owner"),
	}
	var err error
	if req.First, err = queryInt(c, "first"); err != nil {
		return req, err
	}
	if req.Skip, err = queryInt(c, "skip"); err != nil {
		return req, err
	}
	return req, nil
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", entity.ErrInvalidRequest, name)
	}
	return v, nil
}
