package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/escapecenter/conciergebot/internal/handler"
	"github.com/escapecenter/conciergebot/internal/middleware"
)

// Setup registers middleware and all routes.
func Setup(h *server.Hertz, webhookHandler *handler.Handler) {
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())

	h.GET("/", webhookHandler.HandleIndex)
	h.GET("/health", webhookHandler.HandleHealth)
	h.POST("/webhook", webhookHandler.HandleWebhook)
}
