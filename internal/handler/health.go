package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// HandleIndex confirms the bot is alive.
func (h *Handler) HandleIndex(ctx context.Context, c *app.RequestContext) {
	c.String(consts.StatusOK, "✅ concierge bot is alive")
}

// HandleHealth reports readiness for probes.
func (h *Handler) HandleHealth(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"status": "ok"})
}
