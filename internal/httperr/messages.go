package httperr

import "net/http"

type entry struct {
	status  int
	message string
}

var catalog = map[string]entry{
	// lookups
	"stylist_not_found":     {http.StatusNotFound, "Peluquero no encontrado."},
	"service_not_found":     {http.StatusNotFound, "Servicio no encontrado."},
	"appointment_not_found": {http.StatusNotFound, "Cita no encontrada."},
	"schedule_not_found":    {http.StatusNotFound, "Horario no encontrado."},
	"shift_not_found":       {http.StatusNotFound, "Turno no encontrado."},
	"user_not_found":        {http.StatusNotFound, "Usuario no encontrado."},

	// input
	"invalid_date": {http.StatusBadRequest, "Fecha inválida."},
	"invalid_time": {http.StatusBadRequest, "Hora inválida."},

	// state
	"invalid_state": {http.StatusConflict, "La cita no admite este cambio de estado."},

	// schedule legality
	"closed_on_sunday":           {http.StatusUnprocessableEntity, "La peluquería cierra los domingos."},
	"invalid_weekday":            {http.StatusUnprocessableEntity, "Día de la semana inválido."},
	"missing_time":               {http.StatusUnprocessableEntity, "La hora de inicio y fin son obligatorias."},
	"end_before_start":           {http.StatusUnprocessableEntity, "La hora fin debe ser posterior a la hora inicio."},
	"not_aligned":                {http.StatusUnprocessableEntity, "Las horas deben ir en tramos de 30 minutos (00 o 30)."},
	"outside_opening_hours":      {http.StatusUnprocessableEntity, "El horario debe estar dentro del horario de apertura."},
	"overlaps_lunch":             {http.StatusUnprocessableEntity, "La peluquería cierra al mediodía para comer."},
	"end_date_before_start_date": {http.StatusUnprocessableEntity, "La fecha fin no puede ser anterior a la fecha inicio."},
	"invalid_shift":              {http.StatusUnprocessableEntity, "Turno inválido."},

	// appointment legality
	"missing_stylist":     {http.StatusUnprocessableEntity, "Selecciona un peluquero."},
	"missing_service":     {http.StatusUnprocessableEntity, "Selecciona un servicio."},
	"date_in_past":        {http.StatusUnprocessableEntity, "La fecha de la cita no puede ser anterior a hoy."},
	"time_not_aligned":    {http.StatusUnprocessableEntity, "Las citas solo pueden comenzar a en punto o y media."},
	"service_not_offered": {http.StatusUnprocessableEntity, "El peluquero seleccionado no ofrece el servicio elegido."},
	"slot_unavailable":    {http.StatusConflict, "La hora seleccionada no está disponible."},

	// accounts
	"missing_username":          {http.StatusUnprocessableEntity, "El nombre de usuario es obligatorio."},
	"invalid_email_domain":      {http.StatusUnprocessableEntity, "El dominio del e-mail no parece válido."},
	"password_too_short":        {http.StatusUnprocessableEntity, "La contraseña debe tener al menos 8 caracteres."},
	"password_entirely_numeric": {http.StatusUnprocessableEntity, "La contraseña no puede ser solo números."},
	"password_too_similar":      {http.StatusUnprocessableEntity, "La contraseña se parece demasiado al usuario."},
}

// Describe returns the HTTP status and user-facing message for a code.
func Describe(code string) (int, string) {
	if e, ok := catalog[code]; ok {
		return e.status, e.message
	}
	return http.StatusUnprocessableEntity, code
}
