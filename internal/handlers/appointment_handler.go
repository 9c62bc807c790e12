package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	update     *ucAppointment.UpdateAppointment
	cancel     *ucAppointment.CancelAppointment
	complete   *ucAppointment.CompleteAppointment
	listMine   *ucAppointment.ListClientAppointments
	listByDate *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	listMine *ucAppointment.ListClientAppointments,
	listByDate *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		update:     update,
		cancel:     cancel,
		complete:   complete,
		listMine:   listMine,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentRequest is shared by create and edit. Missing ids are left to
// the use case so they come back as field errors.
type AppointmentRequest struct {
	StylistID uint   `json:"stylist_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}

// ======================================================
// CLIENT
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	items, err := h.listMine.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, "failed_to_list_appointments", err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:    currentUserID(c),
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Reason:    req.Reason,
	})
	if err != nil {
		respondError(c, "failed_to_create_appointment", err)
		return
	}

	httpresp.Created(c, dto.AppointmentFromModel(*created))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		UserID:        currentUserID(c),
		AppointmentID: id,
		StylistID:     req.StylistID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Reason:        req.Reason,
	})
	if err != nil {
		respondError(c, "failed_to_update_appointment", err)
		return
	}

	httpresp.OK(c, dto.AppointmentFromModel(*updated))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, "failed_to_cancel_appointment", err)
		return
	}

	httpresp.OK(c, dto.AppointmentFromModel(*ap))
}

// ======================================================
// STAFF
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, "failed_to_complete_appointment", err)
		return
	}

	httpresp.OK(c, dto.AppointmentFromModel(*ap))
}

// ListByDate expects ?date=YYYY-MM-DD&stylist_id=N.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date, ok := parseDate(c.Query("date"))
	if !ok {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	stylistID, ok := parseID(c.Query("stylist_id"))
	if !ok {
		httperr.BadRequest(c, "invalid_params", "stylist_id inválido.")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), stylistID, date)
	if err != nil {
		respondError(c, "failed_to_list_appointments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date.Format("2006-01-02"),
		"stylist_id":   stylistID,
		"appointments": items,
	})
}
