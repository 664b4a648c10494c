package handler

import (
	"net/http"

	"placemap-api/internal/markers"
	"placemap-api/internal/service"

	"github.com/gin-gonic/gin"
)

// LightboxHandler handles the full-screen image viewer
type LightboxHandler struct {
	service LightboxService
}

// LightboxService interface for dependency injection
type LightboxService interface {
	OnMarkerImageClicked(h markers.Handle) (service.Lightbox, error)
	Lightbox() service.Lightbox
	CloseLightbox() service.Lightbox
}

// NewLightboxHandler creates a new lightbox handler
func NewLightboxHandler(svc LightboxService) *LightboxHandler {
	return &LightboxHandler{service: svc}
}

// Open handles POST /markers/:id/lightbox requests
//
//	@Summary	Open the lightbox on a marker's image
//	@Tags		lightbox
//	@Produce	json
//	@Param		id	path		int	true	"marker id"
//	@Success	200	{object}	service.Lightbox
//	@Failure	404	{object}	ErrorResponse
//	@Router		/markers/{id}/lightbox [post]
func (h *LightboxHandler) Open(c *gin.Context) {
	id, ok := markerID(c)
	if !ok {
		return
	}

	lightbox, err := h.service.OnMarkerImageClicked(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lightbox)
}

// State handles GET /lightbox requests
//
//	@Summary	Current lightbox state
//	@Tags		lightbox
//	@Produce	json
//	@Success	200	{object}	service.Lightbox
//	@Router		/lightbox [get]
func (h *LightboxHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Lightbox())
}

// Close handles DELETE /lightbox requests
//
//	@Summary	Close the lightbox
//	@Tags		lightbox
//	@Produce	json
//	@Success	200	{object}	service.Lightbox
//	@Router		/lightbox [delete]
func (h *LightboxHandler) Close(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CloseLightbox())
}
