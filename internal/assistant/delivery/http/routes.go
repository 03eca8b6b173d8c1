package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	a := rg.Group("/assistant")
	{
		a.POST("/messages", h.SendMessage)
		a.GET("/capabilities", h.Capabilities)
		a.GET("/status", h.Status)
		a.GET("/history", h.History)
		a.DELETE("/history", h.ResetHistory)
		a.DELETE("/session", h.EndSession)
	}
}
