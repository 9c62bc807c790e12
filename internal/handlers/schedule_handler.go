package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

// ScheduleHandler is the staff side of stylist working time: weekly
// templates ("schedules") and date-range overrides ("shifts").
type ScheduleHandler struct {
	templates *ucSchedule.ManageTemplates
	overrides *ucSchedule.ManageOverrides
}

func NewScheduleHandler(
	templates *ucSchedule.ManageTemplates,
	overrides *ucSchedule.ManageOverrides,
) *ScheduleHandler {
	return &ScheduleHandler{
		templates: templates,
		overrides: overrides,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TemplateRequest struct {
	Weekday   *int   `json:"weekday" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    *bool  `json:"active"`
}

func (r TemplateRequest) input() ucSchedule.TemplateInput {
	return ucSchedule.TemplateInput{
		Weekday:   *r.Weekday,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Active:    r.Active == nil || *r.Active,
	}
}

type OverrideRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Shift     string `json:"shift" binding:"required"`
	Active    *bool  `json:"active"`
}

func (r OverrideRequest) input() ucSchedule.OverrideInput {
	return ucSchedule.OverrideInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Shift:     r.Shift,
		Active:    r.Active == nil || *r.Active,
	}
}

// ======================================================
// TEMPLATES
// ======================================================

func (h *ScheduleHandler) ListTemplates(c *gin.Context) {
	stylistID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.templates.List(c.Request.Context(), stylistID)
	if err != nil {
		respondError(c, "failed_to_list_schedules", err)
		return
	}

	httpresp.List(c, items)
}

func (h *ScheduleHandler) CreateTemplate(c *gin.Context) {
	stylistID, ok := pathID(c)
	if !ok {
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	created, err := h.templates.Create(c.Request.Context(), currentUserID(c), stylistID, req.input())
	if err != nil {
		respondError(c, "failed_to_create_schedule", err)
		return
	}

	httpresp.Created(c, created)
}

func (h *ScheduleHandler) UpdateTemplate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updated, err := h.templates.Update(c.Request.Context(), currentUserID(c), id, req.input())
	if err != nil {
		respondError(c, "failed_to_update_schedule", err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *ScheduleHandler) DeleteTemplate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.templates.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, "failed_to_delete_schedule", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// OVERRIDES
// ======================================================

func (h *ScheduleHandler) ListOverrides(c *gin.Context) {
	stylistID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.overrides.List(c.Request.Context(), stylistID)
	if err != nil {
		respondError(c, "failed_to_list_shifts", err)
		return
	}

	httpresp.List(c, items)
}

func (h *ScheduleHandler) CreateOverride(c *gin.Context) {
	stylistID, ok := pathID(c)
	if !ok {
		return
	}

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	created, err := h.overrides.Create(c.Request.Context(), currentUserID(c), stylistID, req.input())
	if err != nil {
		respondError(c, "failed_to_create_shift", err)
		return
	}

	httpresp.Created(c, created)
}

func (h *ScheduleHandler) UpdateOverride(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updated, err := h.overrides.Update(c.Request.Context(), currentUserID(c), id, req.input())
	if err != nil {
		respondError(c, "failed_to_update_shift", err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *ScheduleHandler) DeleteOverride(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.overrides.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, "failed_to_delete_shift", err)
		return
	}

	c.Status(http.StatusNoContent)
}
