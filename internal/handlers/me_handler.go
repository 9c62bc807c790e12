package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the login and, when one exists, its client record.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)
	db := h.db.WithContext(c.Request.Context())

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "user_not_found", "Usuario no encontrado.")
			return
		}
		respondError(c, "internal_error", err)
		return
	}

	var client *models.Client
	var found models.Client
	err := db.Where("user_id = ?", userID).First(&found).Error
	switch {
	case err == nil:
		client = &found
	case !errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, "internal_error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   userPayload(&user),
		"client": client,
	})
}
