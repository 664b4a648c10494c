package handler

import (
	"net/http"

	"placemap-api/internal/markers"
	"placemap-api/internal/models"
	"placemap-api/internal/service"

	"github.com/gin-gonic/gin"
)

// FilterHandler handles the legend and the filter bar
type FilterHandler struct {
	service FilterService
}

// FilterService interface for dependency injection
type FilterService interface {
	Legend() ([]models.Category, error)
	FilterControls() ([]service.FilterControl, error)
	ApplyFilter(selected string) ([]markers.Entry, error)
}

// FilterRequest is the body of PUT /filter
type FilterRequest struct {
	Category string `json:"category" binding:"required" example:"food"`
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(svc FilterService) *FilterHandler {
	return &FilterHandler{service: svc}
}

// Categories handles GET /categories requests
//
//	@Summary	List the categories in use, in display order
//	@Tags		filters
//	@Produce	json
//	@Success	200	{array}		models.Category
//	@Failure	503	{object}	ErrorResponse
//	@Router		/categories [get]
func (h *FilterHandler) Categories(c *gin.Context) {
	legend, err := h.service.Legend()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, legend)
}

// Filters handles GET /filters requests
//
//	@Summary	List the filter controls with the active one flagged
//	@Tags		filters
//	@Produce	json
//	@Success	200	{array}		service.FilterControl
//	@Failure	503	{object}	ErrorResponse
//	@Router		/filters [get]
func (h *FilterHandler) Filters(c *gin.Context) {
	controls, err := h.service.FilterControls()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, controls)
}

// Apply handles PUT /filter requests
//
//	@Summary	Select a category, or "all", and return the visible markers
//	@Tags		filters
//	@Accept		json
//	@Produce	json
//	@Param		request	body		FilterRequest	true	"selection"
//	@Success	200		{array}		MarkerResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/filter [put]
func (h *FilterHandler) Apply(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field 'category'"})
		return
	}

	visible, err := h.service.ApplyFilter(req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMarkerResponses(visible))
}
