package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucUser "github.com/BruksfildServices01/salon-scheduler/internal/usecase/user"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

// SaveUser inserts new users and updates existing ones in full.
func (r *UserGormRepository) SaveUser(ctx context.Context, u *models.User) error {
	if u.ID == 0 {
		return r.db.WithContext(ctx).Create(u).Error
	}
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) GetOrCreateClientForUser(
	ctx context.Context,
	user *models.User,
) (*models.Client, error) {
	return getOrCreateClient(r.db.WithContext(ctx), user)
}

// getOrCreateClient finds the client linked to a login or creates one from
// the login's names.
func getOrCreateClient(db *gorm.DB, user *models.User) (*models.Client, error) {
	var client models.Client
	err := db.Where("user_id = ?", user.ID).First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := user.FirstName
	if name == "" {
		name = user.Username
	}

	userID := user.ID
	client = models.Client{
		UserID:    &userID,
		FirstName: name,
		LastName:  user.LastName,
		Email:     user.Email,
	}

	if err := db.Create(&client).Error; err != nil {
		if !httperr.IsUniqueViolation(err) {
			return nil, err
		}
		// Created concurrently by another request.
		client = models.Client{}
		if err := db.Where("user_id = ?", user.ID).First(&client).Error; err != nil {
			return nil, err
		}
	}

	return &client, nil
}

var _ ucUser.Repository = (*UserGormRepository)(nil)
