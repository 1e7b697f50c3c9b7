package account

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Account is a signed-in identity. Most rows are mirrored from the external
// identity provider via webhook; admin accounts are created locally and are
// the only ones with a password hash.
type Account struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"providerId,omitempty"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	IsActive     *bool     `json:"is_active"`
	IsAdmin      bool      `json:"is_admin"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

func (a *Account) SetActive(active bool) {
	a.IsActive = &active
}

func (a *Account) Active() bool {
	return a.IsActive == nil || *a.IsActive
}

// ProviderAccount is the identity payload delivered by the provider's
// user-created webhook.
type ProviderAccount struct {
	ProviderID string `json:"id" validate:"required"`
	Name       string `json:"name"`
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}
