package util

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/model"
)

// ValidateFutureDate 验证日期是否在未来
func ValidateFutureDate(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return date.After(time.Now())
}

// ValidatePassword checks password strength before any network call. The
// messages are part of the user-facing contract and must stay stable.
func ValidatePassword(password string) error {
	if password == "" {
		return apperrors.New(apperrors.ErrValidation, "Password is required")
	}
	if len(password) < 8 {
		return apperrors.New(apperrors.ErrWeakPassword, "Password must be at least 8 characters")
	}
	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return apperrors.New(apperrors.ErrWeakPassword, "Password must contain at least one letter")
	}
	if !hasDigit {
		return apperrors.New(apperrors.ErrWeakPassword, "Password must contain at least one number")
	}
	return nil
}

// ValidatePostText checks post text before any network call.
func ValidatePostText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return apperrors.New(apperrors.ErrValidation, "Post text is required")
	}
	if len([]rune(trimmed)) > model.MaxPostLength {
		return apperrors.New(apperrors.ErrValidation, "Post text exceeds maximum length of 500 characters")
	}
	return nil
}

// ValidateEventDate rejects past-dated events client-side.
func ValidateEventDate(date time.Time) error {
	if date.IsZero() {
		return apperrors.New(apperrors.ErrValidation, "Event date is required")
	}
	if !date.After(time.Now()) {
		return apperrors.New(apperrors.ErrValidation, "Event date cannot be in the past")
	}
	return nil
}

// ValidateRegistration runs the client-side pre-flight checks for register.
func ValidateRegistration(req model.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.New(apperrors.ErrValidation, "Name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.New(apperrors.ErrValidation, "Email is required")
	}
	if err := validate.Var(req.Email, "email"); err != nil {
		return apperrors.New(apperrors.ErrValidation, "Invalid email format")
	}
	if req.ProfileType != model.ProfileIndividual && req.ProfileType != model.ProfileGroup {
		return apperrors.New(apperrors.ErrValidation, "Invalid profile_type. Must be one of: INDIVIDUAL, GROUP")
	}
	return ValidatePassword(req.Password)
}

var validate = validator.New()
