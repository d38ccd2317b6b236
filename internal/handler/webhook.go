package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/escapecenter/conciergebot/internal/config"
	"github.com/escapecenter/conciergebot/internal/service"
)

type webhookRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type webhookResponse struct {
	Reply string `json:"reply"`
}

// HandleWebhook processes one inbound message. Two exact message literals
// carry control semantics: the reset phrase clears the session, and the
// usage code returns a token/cost report. Everything else goes through
// the orchestrator.
func (h *Handler) HandleWebhook(ctx context.Context, c *app.RequestContext) {
	var req webhookRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "invalid JSON body"})
		return
	}

	if req.Message == "" || req.UserID == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "missing 'message' or 'user_id'"})
		return
	}

	message := strings.TrimSpace(req.Message)

	switch {
	case strings.EqualFold(message, config.ResetPhrase):
		if err := h.orchestrator.Reset(ctx, req.UserID); err != nil {
			slog.Error("reset session", "user_id", req.UserID, "error", err)
			c.JSON(consts.StatusOK, webhookResponse{Reply: service.ReplyProviderError})
			return
		}
		c.JSON(consts.StatusOK, webhookResponse{Reply: service.ReplyReset})

	case message == config.UsageReportCode:
		c.JSON(consts.StatusOK, webhookResponse{Reply: h.orchestrator.UsageReport(ctx, req.UserID)})

	default:
		reply := h.orchestrator.Answer(ctx, req.UserID, req.Message)
		c.JSON(consts.StatusOK, webhookResponse{Reply: reply})
	}
}
