package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	"github.com/mkravchenko/groupdir/internal/group/service"
	"github.com/mkravchenko/groupdir/internal/principal"
)

// Handler handles HTTP requests for group directory endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new group handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListGroups handles GET /groups requests. Sorting, paging, and filter
// flags arrive as query-string values and are parsed into typed values
// before they reach the service.
func (h *Handler) ListGroups(c *gin.Context) {
	page := groupModel.ParsePageNumber(c.Query("page"))
	filters := groupModel.SearchFilters{
		SortKey:       groupModel.ParseSortKey(c.Query("sort")),
		Query:         c.Query("query"),
		FilterHidden:  groupModel.ParseBoolFlag(c.Query("filter_hidden"), false),
		ShowMembers:   groupModel.ParseBoolFlag(c.Query("show_members"), true),
		HideEphemeral: groupModel.ParseBoolFlag(c.Query("hide_ephemeral"), false),
		ExcludeGroups: c.QueryArray("exclude"),
	}

	resp, err := h.service.ListGroups(c.Request.Context(), principal.FromContext(c), page, filters)
	if err != nil {
		h.logger.Errorw("error listing groups", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetGroupDetails handles GET /groups/:slug requests from browsers.
// Non-canonical slugs answer with a redirect to the canonical location.
func (h *Handler) GetGroupDetails(c *gin.Context) {
	h.groupDetails(c, false)
}

// GetGroupDetailsAPI handles GET /api/groups/:slug requests. API clients
// are never redirected; the canonical slug is resolved in place.
func (h *Handler) GetGroupDetailsAPI(c *gin.Context) {
	h.groupDetails(c, true)
}

func (h *Handler) groupDetails(c *gin.Context, isAPI bool) {
	slug := c.Param("slug")

	result, err := h.service.GetGroupDetails(c.Request.Context(), principal.FromContext(c), slug, isAPI)
	if err != nil {
		if errors.Is(err, groupModel.ErrGroupNotFound) || errors.Is(err, groupModel.ErrInvalidSlug) {
			notFoundResponse(c)
			return
		}
		h.logger.Errorw("error getting group details", "slug", slug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	if result.RedirectTo != "" {
		c.Redirect(http.StatusMovedPermanently, result.RedirectTo)
		return
	}

	c.JSON(http.StatusOK, result.View)
}

// GetGroupMembers handles GET /groups/:slug/members requests.
func (h *Handler) GetGroupMembers(c *gin.Context) {
	slug := c.Param("slug")
	page := groupModel.ParsePageNumber(c.Query("page"))

	resp, err := h.service.GetGroupMembers(c.Request.Context(), principal.FromContext(c), slug, page)
	if err != nil {
		if errors.Is(err, groupModel.ErrGroupNotFound) || errors.Is(err, groupModel.ErrInvalidSlug) {
			notFoundResponse(c)
			return
		}
		h.logger.Errorw("error getting group members", "slug", slug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
