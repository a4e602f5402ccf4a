package domain

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/pixeltrack/pixeltrack/internal/domain UserRepository

const (
	MsgDuplicateEmail  = "Este email já está cadastrado."
	MsgDuplicateDomain = "Este domínio já está cadastrado."
)

// User is an account owning domains. PasswordHash is never serialised.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserRepository is the relational store for users
type UserRepository interface {
	// CreateUser returns *ErrDuplicateKey when the email is taken
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) error
}

// NormalizeEmail lower-cases and trims an address before storage or lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName requires at least two characters
func ValidateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < 2 {
		return NewValidationError("o nome deve ter pelo menos 2 caracteres")
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("o email é obrigatório")
	}
	if !govalidator.IsEmail(email) {
		return NewValidationError("email inválido")
	}
	return nil
}

// ValidatePassword enforces 8+ characters with at least one digit and one upper-case letter
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return NewValidationError("a senha deve ter pelo menos 8 caracteres")
	}

	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit {
		return NewValidationError("a senha deve conter pelo menos um número")
	}
	if !hasUpper {
		return NewValidationError("a senha deve conter pelo menos uma letra maiúscula")
	}
	return nil
}
