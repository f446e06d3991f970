package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewGinEngine builds a Gin router and registers the identity-provider routes.
func NewGinEngine(s *Server) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())

	r.GET("/icid/v1/authorize", s.HandleAuthorizeGin)
	r.GET("/icid/v1/requests/:id", s.HandleGetPendingGin)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
