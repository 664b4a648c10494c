package handler

import (
	"net/http"

	"placemap-api/internal/config"
	"placemap-api/internal/markers"
	"placemap-api/internal/models"
	"placemap-api/internal/popup"

	"github.com/gin-gonic/gin"
)

// MarkerHandler handles marker and place requests
type MarkerHandler struct {
	service MarkerService
}

// MarkerService interface for dependency injection
type MarkerService interface {
	View() config.MapConfig
	VisibleMarkers() ([]markers.Entry, error)
	MarkersInView(box models.BoundingBox) ([]markers.Entry, error)
	AddPlace(place models.Place) (markers.Entry, error)
	Popup(h markers.Handle) (string, error)
}

// MarkerResponse is a marker as rendered by the front-end
type MarkerResponse struct {
	ID        markers.Handle `json:"id"`
	Category  string         `json:"category"`
	Visible   bool           `json:"visible"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Place     models.Place   `json:"place"`
	Icon      popup.IconSpec `json:"icon"`
	Popup     popup.Options  `json:"popupOptions"`
}

func toMarkerResponse(e markers.Entry) MarkerResponse {
	resp := MarkerResponse{
		ID:        e.Handle,
		Category:  e.Category,
		Visible:   e.Visible,
		Latitude:  e.Place.Latitude,
		Longitude: e.Place.Longitude,
		Place:     e.Place,
	}
	if e.Marker != nil {
		resp.Icon = e.Marker.Icon
		resp.Popup = e.Marker.PopupOptions
	}
	return resp
}

func toMarkerResponses(entries []markers.Entry) []MarkerResponse {
	out := make([]MarkerResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toMarkerResponse(e))
	}
	return out
}

// NewMarkerHandler creates a new marker handler
func NewMarkerHandler(svc MarkerService) *MarkerHandler {
	return &MarkerHandler{service: svc}
}

// View handles GET /map requests
//
//	@Summary	Initial map view and tile layer
//	@Tags		map
//	@Produce	json
//	@Success	200	{object}	config.MapConfig
//	@Router		/map [get]
func (h *MarkerHandler) View(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.View())
}

// Markers handles GET /markers requests
//
//	@Summary	List visible markers, optionally restricted to a viewport
//	@Tags		markers
//	@Produce	json
//	@Param		bbox	query		string	false	"minLat,minLng,maxLat,maxLng"
//	@Success	200		{array}		MarkerResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/markers [get]
func (h *MarkerHandler) Markers(c *gin.Context) {
	var (
		entries []markers.Entry
		err     error
	)

	if bbox := c.Query("bbox"); bbox != "" {
		box, parseErr := models.ParseBoundingBox(bbox)
		if parseErr != nil {
			respondError(c, parseErr)
			return
		}
		entries, err = h.service.MarkersInView(box)
	} else {
		entries, err = h.service.VisibleMarkers()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMarkerResponses(entries))
}

// AddPlace handles POST /places requests
//
//	@Summary	Add a place; its marker follows the current filter
//	@Tags		markers
//	@Accept		json
//	@Produce	json
//	@Param		place	body		models.Place	true	"place"
//	@Success	201		{object}	MarkerResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/places [post]
func (h *MarkerHandler) AddPlace(c *gin.Context) {
	var place models.Place
	if err := c.ShouldBindJSON(&place); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place payload"})
		return
	}
	if place.Name == "" || place.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'name' and 'category'"})
		return
	}

	entry, err := h.service.AddPlace(place)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMarkerResponse(entry))
}

// Popup handles GET /markers/:id/popup requests
//
//	@Summary	Popup HTML of a marker
//	@Tags		markers
//	@Produce	html
//	@Param		id	path		int	true	"marker id"
//	@Success	200	{string}	string
//	@Failure	404	{object}	ErrorResponse
//	@Router		/markers/{id}/popup [get]
func (h *MarkerHandler) Popup(c *gin.Context) {
	id, ok := markerID(c)
	if !ok {
		return
	}

	html, err := h.service.Popup(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
