package userapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         string  `json:"role"`
	CompanyID    string  `json:"company_id"`
	DepartmentID *string `json:"department_id,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// InviteUser creates an inactive user; the account activates once the
// invitee sets a password through the invite token.
type InviteUser struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CompanyID    string `json:"company_id"`
	DepartmentID string `json:"department_id"`
}

func (r InviteUser) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email has an invalid format")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name are required")
	}
	return nil
}

type InviteResponse struct {
	UserID      string `json:"user_id"`
	InviteToken string `json:"invite_token"`
}

type UpdateUser struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	DepartmentID *string `json:"department_id"`
}

func (r UpdateUser) Validate() error {
	if r.FirstName != nil && *r.FirstName == "" {
		return errors.New("first name must not be empty")
	}
	if r.LastName != nil && *r.LastName == "" {
		return errors.New("last name must not be empty")
	}
	return nil
}

type UserFilter struct {
	CompanyID    string `json:"company_id"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
}
