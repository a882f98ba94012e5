package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/audit"
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

type OwnerHandler struct {
	repo              domain.Repository
	audit             *audit.Dispatcher
	getWorkDetails    *ucSchedule.GetWorkDetails
	updateWorkDetails *ucSchedule.UpdateWorkDetails
}

func NewOwnerHandler(
	repo domain.Repository,
	audit *audit.Dispatcher,
	getWorkDetails *ucSchedule.GetWorkDetails,
	updateWorkDetails *ucSchedule.UpdateWorkDetails,
) *OwnerHandler {
	return &OwnerHandler{
		repo:              repo,
		audit:             audit,
		getWorkDetails:    getWorkDetails,
		updateWorkDetails: updateWorkDetails,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOwnerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type WorkDetailsRequest struct {
	ID      string   `json:"id" binding:"required"`
	Start   string   `json:"start" binding:"required"`
	End     string   `json:"end" binding:"required"`
	OffDays []string `json:"offDays"`
}

// ======================================================
// CREATE / LIST
// ======================================================

func (h *OwnerHandler) Create(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}

	owner := models.NewOwner(req.Name, req.Email)
	if err := h.repo.SaveOwner(c.Request.Context(), owner); err != nil {
		httperr.Internal(c, "owner_save_failed", "Failed to save owner.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OwnerID:  owner.ID,
		Action:   "owner_created",
		Entity:   "owner",
		EntityID: owner.ID,
	})

	httpresp.OK(c, dto.NewOwnerDTO(owner))
}

func (h *OwnerHandler) List(c *gin.Context) {
	owners, err := h.repo.AllOwners(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "owner_list_failed", "Failed to list owners.")
		return
	}

	out := make([]dto.OwnerDTO, 0, len(owners))
	for _, o := range owners {
		out = append(out, dto.NewOwnerDTO(o))
	}
	httpresp.List(c, out)
}

// ======================================================
// WORK DETAILS
// ======================================================

func (h *OwnerHandler) GetWorkDetails(c *gin.Context) {
	details, err := h.getWorkDetails.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeOwnerNotFound) {
			httperr.NotFound(c, httperr.CodeOwnerNotFound, "Owner not found.")
			return
		}
		httperr.Internal(c, "work_details_failed", "Failed to load work details.")
		return
	}

	httpresp.OK(c, details)
}

func (h *OwnerHandler) UpdateWorkDetails(c *gin.Context) {
	var req WorkDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Owner id, start, and end are required.")
		return
	}

	details, err := h.updateWorkDetails.Execute(c.Request.Context(), ucSchedule.UpdateWorkDetailsInput{
		OwnerID: req.ID,
		Start:   req.Start,
		End:     req.End,
		OffDays: req.OffDays,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeOwnerNotFound:
			httperr.NotFound(c, httperr.CodeOwnerNotFound, "Owner not found.")
		case "invalid_time_format":
			httperr.BadRequest(c, "invalid_time_format", "Invalid time format. Use HH:MM (e.g., 09:00).")
		case "invalid_weekday":
			httperr.BadRequest(c, "invalid_weekday", "Invalid off day. Use MONDAY, TUESDAY, etc.")
		case "invalid_work_hours":
			httperr.BadRequest(c, "invalid_work_hours", "Start time must be before end time.")
		default:
			httperr.Internal(c, "work_details_failed", "Failed to update work details.")
		}
		return
	}

	httpresp.OK(c, details)
}
