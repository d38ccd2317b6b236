package handler

import (
	"github.com/escapecenter/conciergebot/internal/config"
	"github.com/escapecenter/conciergebot/internal/service"
)

// Handler holds all dependencies needed by the webhook and health handlers.
type Handler struct {
	cfg          *config.Config
	orchestrator *service.Orchestrator
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg          *config.Config
	Orchestrator *service.Orchestrator
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:          deps.Cfg,
		orchestrator: deps.Orchestrator,
	}
}
