package vacationapimodels

import "github.com/pkg/errors"

type VacationPeriod struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	IsDefault bool   `json:"is_default"`
}

type CreateVacationPeriod struct {
	Name      string `json:"name"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	IsDefault bool   `json:"is_default"`
}

func (r CreateVacationPeriod) Validate() error {
	if r.Name == "" {
		return errors.New("period name is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if r.EndDate.Before(r.StartDate.Time) {
		return errors.New("end date must not be before start date")
	}
	return nil
}

type UpdateVacationPeriod struct {
	Name      *string `json:"name"`
	StartDate *Date   `json:"start_date"`
	EndDate   *Date   `json:"end_date"`
	IsDefault *bool   `json:"is_default"`
}

func (r UpdateVacationPeriod) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("period name must not be empty")
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(r.StartDate.Time) {
		return errors.New("end date must not be before start date")
	}
	return nil
}
