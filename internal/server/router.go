package server

import "github.com/gin-gonic/gin"

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Healthz)
	r.GET("/reviews/", h.ListReviews)
	r.POST("/reviews/", h.CreateReview)
	r.POST("/analyze/", h.Analyze)

	return r
}
