package vacationapimodels

import "github.com/pkg/errors"

type VacationAllocation struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	VacationPeriodID string  `json:"vacation_period_id"`
	TotalDays        float64 `json:"total_days"`
	CarriedOverDays  float64 `json:"carried_over_days"`
	DaysUsed         float64 `json:"days_used"`
}

type CreateVacationAllocation struct {
	UserID           string  `json:"user_id"`
	VacationPeriodID string  `json:"vacation_period_id"`
	TotalDays        float64 `json:"total_days"`
	CarriedOverDays  float64 `json:"carried_over_days"`
}

func (r CreateVacationAllocation) Validate() error {
	if r.UserID == "" || r.VacationPeriodID == "" {
		return errors.New("user and vacation period are required")
	}
	if r.TotalDays < 0 || r.CarriedOverDays < 0 {
		return errors.New("day amounts must not be negative")
	}
	return nil
}

type UpdateVacationAllocation struct {
	TotalDays       *float64 `json:"total_days"`
	CarriedOverDays *float64 `json:"carried_over_days"`
}

func (r UpdateVacationAllocation) Validate() error {
	if r.TotalDays != nil && *r.TotalDays < 0 {
		return errors.New("day amounts must not be negative")
	}
	if r.CarriedOverDays != nil && *r.CarriedOverDays < 0 {
		return errors.New("day amounts must not be negative")
	}
	return nil
}
