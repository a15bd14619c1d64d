package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-posts/internal/metrics"
	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

const msgLoading = "posts are loading"

// Viewer derives listing pages from the mounted view state.
type Viewer interface {
	View(category *string, page *int) (postlist.PageView, error)
}

type ViewRequest struct {
	Category *string `query:"category"`
	Page     *int    `query:"page"`
}

type PostsHandler struct {
	viewer  Viewer
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewPostsHandler(viewer Viewer, m *metrics.Metrics, log *slog.Logger) *PostsHandler {
	return &PostsHandler{
		viewer:  viewer,
		metrics: m,
		log:     log,
	}
}

func (h *PostsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Index handles GET /
// @Summary Posts listing page
// @Description Renders the listing as HTML. Unknown categories fall back to All, unparsable pages to the first page.
// @Tags posts
// @Produce html
// @Param category query string false "Category name (default: All)"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {string} string "HTML page"
// @Failure 502 {string} string "HTML page with the error message"
// @Router / [get]
func (h *PostsHandler) Index(c echo.Context) error {
	var category *string
	if value := c.QueryParam("category"); value != "" {
		category = &value
	}

	page, err := postlist.ParsePage(c.QueryParam("page"))
	if err != nil {
		h.log.Warn("ignoring page parameter", "error", err)
		page = 1
	}

	view, err := h.viewer.View(category, &page)
	if errors.Is(err, postlist.ErrUnknownCategory) {
		h.log.Warn("unknown category, showing all posts", "category", *category)
		view, err = h.viewer.View(nil, &page)
	}
	if err != nil {
		h.log.Error("failed to build listing view", "error", err)
		return c.String(http.StatusInternalServerError, postlist.ErrorMessage)
	}

	status := http.StatusOK
	switch view.Status {
	case postlist.StatusError:
		status = http.StatusBadGateway
	case postlist.StatusReady:
		h.metrics.ObserveView(metrics.SurfaceHTML)
	}

	return c.Render(status, templateIndex, newIndexData(view))
}

// View handles GET /api/v1/view
// @Summary Get listing page
// @Description Returns the categories, the visible posts and the pagination of one listing page
// @Tags posts
// @Produce json
// @Param category query string false "Category name (default: All)"
// @Param page query int false "Page number (default: 1), clamped to the available pages"
// @Success 200 {object} rest.PageView
// @Failure 400,502,503 {object} map[string]string
// @Router /api/v1/view [get]
func (h *PostsHandler) View(c echo.Context) error {
	var req ViewRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	view, err := h.viewer.View(req.Category, req.Page)
	if errors.Is(err, postlist.ErrUnknownCategory) {
		return h.handleError(c, err, http.StatusBadRequest, "unknown category")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	switch view.Status {
	case postlist.StatusLoading:
		c.Response().Header().Set("Retry-After", "1")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": msgLoading})
	case postlist.StatusError:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": view.Error})
	}

	h.metrics.ObserveView(metrics.SurfaceJSON)

	return c.JSON(http.StatusOK, NewPageView(view))
}
