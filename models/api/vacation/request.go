package vacationapimodels

import (
	"time"

	"github.com/pkg/errors"

	"vacation-planner-backend/models"
)

type VacationRequest struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	TeamID       *string    `json:"team_id,omitempty"`
	PeriodID     *string    `json:"vacation_period_id,omitempty"`
	StartDate    Date       `json:"start_date"`
	EndDate      Date       `json:"end_date"`
	VacationType string     `json:"vacation_type"`
	DaysCount    float64    `json:"days_count"`
	Status       string     `json:"status"`
	Reason       string     `json:"reason,omitempty"`
	ApproverID   *string    `json:"approver_id,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateVacationRequest struct {
	StartDate    Date    `json:"start_date"`
	EndDate      Date    `json:"end_date"`
	VacationType string  `json:"vacation_type"`
	Reason       string  `json:"reason"`
	TeamID       *string `json:"team_id"`
}

func (r CreateVacationRequest) Validate() error {
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if r.EndDate.Before(r.StartDate.Time) {
		return errors.New("end date must not be before start date")
	}
	if r.VacationType != "" && !models.VacationType(r.VacationType).IsValid() {
		return errors.New("unknown vacation type")
	}
	return nil
}

// VacationRequestAction approves or rejects a pending request.
type VacationRequestAction struct {
	Action  string `json:"action"` // approve|reject
	Comment string `json:"comment"`
}

func (r VacationRequestAction) Validate() error {
	if r.Action != "approve" && r.Action != "reject" {
		return errors.New("action must be either approve or reject")
	}
	return nil
}

type ModifyVacationRequest struct {
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	VacationType *string `json:"vacation_type"`
	Reason       *string `json:"reason"`
}

func (r ModifyVacationRequest) Validate() error {
	if r.VacationType != nil && !models.VacationType(*r.VacationType).IsValid() {
		return errors.New("unknown vacation type")
	}
	return nil
}

type VacationRequestFilter struct {
	StartDate *Date  `json:"start_date"`
	EndDate   *Date  `json:"end_date"`
	Status    string `json:"status"`
}

func (r VacationRequestFilter) Validate() error {
	if r.Status != "" && !models.VacationStatus(r.Status).IsValid() {
		return errors.New("unknown request status")
	}
	return nil
}
