package handler

import (
	"errors"
	"net/http"
	"strconv"

	"placemap-api/internal/markers"
	"placemap-api/internal/models"
	"placemap-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotInitialized):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "map is not ready"})
	case errors.Is(err, markers.ErrUnknownHandle):
		c.JSON(http.StatusNotFound, gin.H{"error": "marker not found"})
	case errors.Is(err, service.ErrNoImage):
		c.JSON(http.StatusNotFound, gin.H{"error": "place has no image"})
	case errors.Is(err, markers.ErrCategoryUnknown):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown category"})
	case errors.Is(err, markers.ErrInvalidCoordinates):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid coordinates"})
	case errors.Is(err, models.ErrInvalidBoundingBox):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bbox, expected minLat,minLng,maxLat,maxLng"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func markerID(c *gin.Context) (markers.Handle, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid marker id"})
		return 0, false
	}
	return markers.Handle(id), true
}
