package router

import (
	"github.com/gin-gonic/gin"

	"revcheck.app/checker/internal/http/handler"
)

func SessionRouter(rg *gin.RouterGroup, h *handler.SessionHandler) {
	rg.POST("", h.Create)
	rg.GET("/:session_id/debug", h.Debug)
	rg.PUT("/:session_id/comments/:index/scope", h.SetScope)
	rg.POST("/:session_id/analyze", h.Analyze)
	rg.GET("/:session_id/report", h.Report)
}
