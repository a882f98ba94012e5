package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/audit"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httpresp"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	httpresp.List(c, h.logger.Entries())
}
