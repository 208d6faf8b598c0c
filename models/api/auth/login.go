package authapimodels

import (
	"net/mail"
	"unicode"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email has an invalid format")
	}
	return nil
}

type SetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r SetPasswordRequest) Validate() error {
	if r.Token == "" {
		return errors.New("invite token is required")
	}
	return ValidatePasswordComplexity(r.Password)
}

type PasswordRecovery struct {
	Email string `json:"email"` // email the reset instructions are sent to, also the login
}

func (r PasswordRecovery) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email has an invalid format")
	}
	return nil
}

type PasswordResetRequest struct {
	ResetCode   string `json:"reset_code"`
	NewPassword string `json:"new_password"`
}

func (r PasswordResetRequest) Validate() error {
	if r.ResetCode == "" {
		return errors.New("invalid reset code")
	}
	return ValidatePasswordComplexity(r.NewPassword)
}

// ValidatePasswordComplexity enforces the minimal password policy:
// at least 8 characters with an upper-case letter, a lower-case letter and a digit.
func ValidatePasswordComplexity(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain upper and lower case letters and a digit")
	}
	return nil
}
