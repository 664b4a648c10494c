package handler

import (
	"net/http"

	"placemap-api/docs"
	"placemap-api/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every handler of the map session onto a gin engine
func NewRouter(session *service.MapSession, middleware ...gin.HandlerFunc) *gin.Engine {
	filterHandler := NewFilterHandler(session)
	markerHandler := NewMarkerHandler(session)
	lightboxHandler := NewLightboxHandler(session)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware...)

	r.GET("/health", func(c *gin.Context) {
		status := "ok"
		if !session.Ready() {
			status = "initializing"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": status,
		})
	})

	r.GET("/map", markerHandler.View)
	r.GET("/categories", filterHandler.Categories)
	r.GET("/filters", filterHandler.Filters)
	r.PUT("/filter", filterHandler.Apply)
	r.GET("/markers", markerHandler.Markers)
	r.POST("/places", markerHandler.AddPlace)
	r.GET("/markers/:id/popup", markerHandler.Popup)
	r.POST("/markers/:id/lightbox", lightboxHandler.Open)
	r.GET("/lightbox", lightboxHandler.State)
	r.DELETE("/lightbox", lightboxHandler.Close)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
