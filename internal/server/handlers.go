package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
	"github.com/user235678/yt-adawi-sub002/internal/pipeline"
	"github.com/user235678/yt-adawi-sub002/internal/service"
)

const sessionCookie = "storefront_session"

type handlers struct {
	svc           *service.Service
	sessionMaxAge int // seconds, matches the session store TTL
}

// listResponse is the rendered catalog page plus the facet state it was
// rendered with, so the controls can reflect the server-side session.
type listResponse struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Category   string           `json:"category"`
	Size       string           `json:"size,omitempty"`
	Color      string           `json:"color,omitempty"`
	Sort       string           `json:"sort"`
	Fallback   bool             `json:"fallback,omitempty"`
	Message    string           `json:"message,omitempty"`
}

func (h *handlers) sessionID(c *gin.Context) string {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, h.sessionMaxAge, "/", "", false, true)
	}
	return id
}

// listProducts applies any facet/sort/page parameters present on the request
// to the session's view state, then runs the pipeline over a fresh fetch.
// Parameter order matters: a category change clears size and color, so an
// explicit size/color on the same request is applied afterwards and sticks.
func (h *handlers) listProducts(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := h.sessionID(c)

	viewState := h.svc.LoadState(ctx, sessionID)

	query := c.Request.URL.Query()
	if query.Has("category") {
		category, _ := domain.ParseCategory(query.Get("category"))
		viewState.SetCategory(category)
	}
	if query.Has("size") {
		viewState.SetSize(query.Get("size"))
	}
	if query.Has("color") {
		viewState.SetColor(query.Get("color"))
	}
	if query.Has("sort") {
		option, _ := pipeline.ParseSortOption(query.Get("sort"))
		viewState.SetSort(option)
	}
	if query.Has("page") {
		if page, err := strconv.Atoi(query.Get("page")); err == nil {
			viewState.SetPage(page)
		}
	}

	result, err := h.svc.Browse(ctx, viewState)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}

	// The pipeline may have clamped the page; persist the clamp so the
	// session never points at a page that no longer exists.
	if result.View.Page != viewState.Page {
		viewState.SetPage(result.View.Page)
	}
	h.svc.SaveState(ctx, sessionID, viewState)

	c.JSON(http.StatusOK, listResponse{
		Items:      result.View.Items,
		Page:       result.View.Page,
		TotalPages: result.View.TotalPages,
		Category:   viewState.Category.String(),
		Size:       viewState.Size,
		Color:      viewState.Color,
		Sort:       viewState.Sort.String(),
		Fallback:   result.Fallback,
		Message:    result.Message,
	})
}

func (h *handlers) openDetail(c *gin.Context) {
	sessionID := h.sessionID(c)

	view, err := h.svc.OpenDetail(sessionID, c.Param("id"))
	switch {
	case errors.Is(err, pipeline.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{"error": "product is out of stock"})
	case errors.Is(err, pipeline.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "detail unavailable"})
	default:
		c.JSON(http.StatusOK, view)
	}
}

func (h *handlers) closeDetail(c *gin.Context) {
	h.svc.CloseDetail(h.sessionID(c))
	c.Status(http.StatusNoContent)
}
