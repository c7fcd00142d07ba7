package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KauaBAG/IfControll/internal/models"
	"github.com/KauaBAG/IfControll/pkg/response"
)

// Version is reported by the liveness probe; the desktop client refuses to
// talk to servers older than its own protocol revision.
const Version = "3.0"

// PingHandler answers the authenticated liveness probe. No store access.
type PingHandler struct{}

// NewPingHandler constructs the handler.
func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

// Ping godoc
// @Summary Liveness probe
// @Tags Infra
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ping [get]
func (h *PingHandler) Ping(c *gin.Context) {
	response.OK(c, "pong", gin.H{
		"timestamp": time.Now().Format(models.WireTimeLayout),
		"version":   Version,
	})
}
