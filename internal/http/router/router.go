package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revcheck.app/checker/internal/http/handler"
	"revcheck.app/checker/internal/service"
)

type RouterConfig struct {
	MaxUploadBytes int64
}

func SetupRoutes(router *gin.Engine, svc service.AnalysisService, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "oracle": svc.Status().Oracle})
	})

	sessionHandler := handler.NewSessionHandler(svc, cfg.MaxUploadBytes)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/status", sessionHandler.Status)
		SessionRouter(v1.Group("/sessions"), sessionHandler)
	}
}
