package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AvailabilityHandler serves the two lookups the booking form calls while
// the user picks service, stylist and date.
type AvailabilityHandler struct {
	getAvailability *ucAppointment.GetAvailability
	listStylists    *ucAppointment.ListStylistsForService
}

func NewAvailabilityHandler(
	getAvailability *ucAppointment.GetAvailability,
	listStylists *ucAppointment.ListStylistsForService,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
		listStylists:    listStylists,
	}
}

// ======================================================
// GET /api/horas-disponibles
// ======================================================

func (h *AvailabilityHandler) Horas(c *gin.Context) {
	serviceID, ok1 := parseID(c.Query("servicio_id"))
	stylistID, ok2 := parseID(c.Query("peluquero_id"))
	if !ok1 || !ok2 {
		httperr.BadRequest(c, "invalid_params", "servicio_id/peluquero_id inválido.")
		return
	}

	date, ok := parseDate(c.Query("fecha"))
	if !ok {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	var exclude uint
	if raw := c.Query("cita_id"); raw != "" {
		if exclude, ok = parseID(raw); !ok {
			httperr.BadRequest(c, "invalid_params", "cita_id inválido.")
			return
		}
	}

	horas, err := h.getAvailability.Execute(c.Request.Context(), ucAppointment.GetAvailabilityInput{
		UserID:               currentUserID(c),
		StylistID:            stylistID,
		ServiceID:            serviceID,
		Date:                 date,
		ExcludeAppointmentID: exclude,
	})
	if err != nil {
		respondError(c, "availability_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"horas": horas})
}

// ======================================================
// GET /api/peluqueros
// ======================================================

func (h *AvailabilityHandler) Peluqueros(c *gin.Context) {
	serviceID, ok := parseID(c.Query("servicio_id"))
	if !ok {
		httperr.BadRequest(c, "invalid_params", "servicio_id inválido.")
		return
	}

	peluqueros, err := h.listStylists.Execute(c.Request.Context(), serviceID)
	if err != nil {
		respondError(c, "stylists_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"peluqueros": peluqueros})
}
