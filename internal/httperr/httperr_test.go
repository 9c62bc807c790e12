package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestBusinessErrorWrapped(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", ErrField("start_time", "slot_unavailable"))

	assert.True(t, IsBusiness(err, "slot_unavailable"))
	assert.False(t, IsBusiness(err, "overlaps_lunch"))

	be, ok := AsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, "start_time", be.Field)
	assert.Equal(t, "start_time: slot_unavailable", be.Error())

	_, ok = AsBusiness(errors.New("plain"))
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	status, msg := Describe("service_not_found")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Servicio no encontrado.", msg)

	status, msg = Describe("something_new")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "something_new", msg)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
