package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/RITWIKRUDRA01/calendar-booking-system/internal/domain/schedule"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/dto"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httperr"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httpresp"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
	ucSchedule "github.com/RITWIKRUDRA01/calendar-booking-system/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type InviteeHandler struct {
	repo         domain.Repository
	availability *ucSchedule.GetAvailability
	book         *ucSchedule.BookSlot
	horizonDays  int
}

func NewInviteeHandler(
	repo domain.Repository,
	availability *ucSchedule.GetAvailability,
	book *ucSchedule.BookSlot,
	horizonDays int,
) *InviteeHandler {
	return &InviteeHandler{
		repo:         repo,
		availability: availability,
		book:         book,
		horizonDays:  horizonDays,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type CreateInviteeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type SlotQueryRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
	Year    int    `json:"year" binding:"required"`
	Month   int    `json:"month" binding:"required"`
	Day     int    `json:"day" binding:"required"`
}

type BookAppointmentRequest struct {
	OwnerID   string `json:"owner_id" binding:"required"`
	InviteeID string `json:"invitee_id" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Year      int    `json:"year" binding:"required"`
	Month     int    `json:"month" binding:"required"`
	Day       int    `json:"day" binding:"required"`
	Hour      int    `json:"hour"`
}

type AvailabilityResponse struct {
	Status  string `json:"status"`
	Date    string `json:"date"`
	Hours   []int  `json:"hours"`
	Message string `json:"message"`
}

// ======================================================
// CREATE / GET
// ======================================================

func (h *InviteeHandler) Create(c *gin.Context) {
	var req CreateInviteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}

	invitee := models.NewInvitee(req.Name, req.Email)
	if err := h.repo.SaveInvitee(c.Request.Context(), invitee); err != nil {
		httperr.Internal(c, "invitee_save_failed", "Failed to save invitee.")
		return
	}

	httpresp.OK(c, dto.NewInviteeDTO(invitee))
}

func (h *InviteeHandler) Get(c *gin.Context) {
	invitee, err := h.repo.InviteeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, httperr.CodeInviteeNotFound, "Invitee not found.")
		return
	}

	httpresp.OK(c, dto.NewInviteeDTO(invitee))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *InviteeHandler) AvailableSlots(c *gin.Context) {
	var req SlotQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Owner id and date are required.")
		return
	}

	date, err := buildDate(req.Year, req.Month, req.Day)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date. Provide a valid year, month, and day.")
		return
	}

	result, err := h.availability.Execute(c.Request.Context(), req.OwnerID, date)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeOwnerNotFound) {
			httperr.NotFound(c, httperr.CodeOwnerNotFound, "Owner not found.")
			return
		}
		httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		return
	}

	httpresp.OK(c, AvailabilityResponse{
		Status:  string(result.Status),
		Date:    date.Format("2006-01-02"),
		Hours:   result.Hours,
		Message: h.availabilityMessage(result, date),
	})
}

func (h *InviteeHandler) availabilityMessage(result domain.AvailabilityResult, date time.Time) string {
	switch result.Status {
	case domain.StatusTooFar:
		return fmt.Sprintf("Too far ahead. Please choose a date within the next %d days.", h.horizonDays)
	case domain.StatusOffDay:
		return "It's an off day. No appointment possible."
	}

	if len(result.Hours) == 0 {
		return fmt.Sprintf("No free slots available on %s.", date.Format("2006-01-02"))
	}

	parts := make([]string, len(result.Hours))
	for i, hour := range result.Hours {
		parts[i] = fmt.Sprintf("%d", hour)
	}
	return fmt.Sprintf("On %s the available hour slots are: %s",
		date.Format("2006-01-02"), strings.Join(parts, ", "))
}

// ======================================================
// BOOKING
// ======================================================

func (h *InviteeHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Owner id, invitee id, subject, and date are required.")
		return
	}

	start, err := buildDateTime(req.Year, req.Month, req.Day, req.Hour)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date or time provided.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucSchedule.BookSlotInput{
		OwnerID:   req.OwnerID,
		InviteeID: req.InviteeID,
		Subject:   req.Subject,
		Start:     start,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeOwnerNotFound:
			httperr.NotFound(c, httperr.CodeOwnerNotFound, "Owner not found.")
		case httperr.CodeInviteeNotFound:
			httperr.NotFound(c, httperr.CodeInviteeNotFound, "Invitee not found. Create the invitee before booking.")
		case httperr.CodeOutOfWindow:
			httperr.BadRequest(c, httperr.CodeOutOfWindow, "Requested time is outside the booking window.")
		case httperr.CodeNotOnTheHour:
			httperr.BadRequest(c, httperr.CodeNotOnTheHour, "Appointments start on the hour.")
		case httperr.CodeOffDay:
			httperr.BadRequest(c, httperr.CodeOffDay, "It's an off day. No appointment possible.")
		case httperr.CodeOutsideHours:
			httperr.BadRequest(c, httperr.CodeOutsideHours, "Requested hour is outside working hours.")
		case httperr.CodeSlotTaken:
			httperr.Conflict(c, httperr.CodeSlotTaken, "Already occupied, try another slot.")
		default:
			httperr.Internal(c, "booking_failed", "Failed to book appointment.")
		}
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}
