package user

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const minPasswordLength = 8

type Repository interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	SaveUser(ctx context.Context, u *models.User) error
	GetOrCreateClientForUser(ctx context.Context, user *models.User) (*models.Client, error)
}

type UpsertUserInput struct {
	Username string
	Email    string
	Password string
	Staff    bool
}

type UpsertUserResult struct {
	User    *models.User
	Client  *models.Client
	Created bool
}

// UpsertUser creates a login or resets an existing one. Client logins also
// get their client record so they can book straight away.
type UpsertUser struct {
	repo Repository

	// emailOK is an optional deliverability check on the e-mail domain.
	emailOK func(email string) bool
}

func NewUpsertUser(repo Repository, emailOK func(string) bool) *UpsertUser {
	return &UpsertUser{repo: repo, emailOK: emailOK}
}

func (uc *UpsertUser) Execute(ctx context.Context, in UpsertUserInput) (*UpsertUserResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, httperr.ErrField("username", "missing_username")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && uc.emailOK != nil && !uc.emailOK(email) {
		return nil, httperr.ErrField("email", "invalid_email_domain")
	}

	if err := ValidatePassword(in.Password, username); err != nil {
		return nil, err
	}

	user, err := uc.repo.FindUserByUsername(ctx, username)
	created := false
	switch {
	case err == nil:
	case httperr.IsBusiness(err, "user_not_found"):
		user = &models.User{Username: username}
		created = true
	default:
		return nil, err
	}

	if email != "" {
		user.Email = email
	}
	user.Role = models.RoleClient
	if in.Staff {
		user.Role = models.RoleStaff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	res := &UpsertUserResult{User: user, Created: created}
	if user.Role == models.RoleClient {
		client, err := uc.repo.GetOrCreateClientForUser(ctx, user)
		if err != nil {
			return nil, err
		}
		res.Client = client
	}

	return res, nil
}

// ValidatePassword rejects short, all-digit and username-like passwords.
func ValidatePassword(password, username string) error {
	if len(password) < minPasswordLength {
		return httperr.ErrField("password", "password_too_short")
	}

	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return httperr.ErrField("password", "password_entirely_numeric")
	}

	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return httperr.ErrField("password", "password_too_similar")
	}

	return nil
}
