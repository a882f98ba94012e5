package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httperr"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httpresp"
	ucSchedule "github.com/RITWIKRUDRA01/calendar-booking-system/internal/usecase/schedule"
)

type CalendarHandler struct {
	summary     *ucSchedule.Summary
	list        *ucSchedule.ListUpcoming
	horizonDays int
}

func NewCalendarHandler(
	summary *ucSchedule.Summary,
	list *ucSchedule.ListUpcoming,
	horizonDays int,
) *CalendarHandler {
	return &CalendarHandler{
		summary:     summary,
		list:        list,
		horizonDays: horizonDays,
	}
}

func (h *CalendarHandler) Summary(c *gin.Context) {
	text, err := h.summary.ExecuteFull(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Message(c, text)
}

func (h *CalendarHandler) Today(c *gin.Context) {
	text, err := h.summary.ExecuteToday(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Message(c, text)
}

// ListUpcoming returns the structured day-by-day grouping. The range defaults
// to the booking horizon starting today; from/to query params override it.
func (h *CalendarHandler) ListUpcoming(c *gin.Context) {
	now := time.Now()
	from := now
	to := now.AddDate(0, 0, h.horizonDays)

	if s := c.Query("from"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid from date. Use YYYY-MM-DD.")
			return
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid to date. Use YYYY-MM-DD.")
			return
		}
		to = t
	}

	days, err := h.list.Execute(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, days)
}

func (h *CalendarHandler) writeError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, httperr.CodeOwnerNotFound) {
		httperr.NotFound(c, httperr.CodeOwnerNotFound, "Owner not found.")
		return
	}
	httperr.Internal(c, "calendar_failed", "Failed to read calendar.")
}
