package dbmodels

import (
	vacationapimodels "vacation-planner-backend/models/api/vacation"
)

type VacationAllocation struct {
	BaseModel
	UserID           string          `gorm:"uniqueIndex:uq_allocation_user_period"`
	User             *User           `gorm:"constraint:OnDelete:CASCADE"`
	VacationPeriodID string          `gorm:"uniqueIndex:uq_allocation_user_period"`
	VacationPeriod   *VacationPeriod `gorm:"constraint:OnDelete:CASCADE"`
	TotalDays        float64
	CarriedOverDays  float64
	DaysUsed         float64
}

func (r VacationAllocation) ToModel() vacationapimodels.VacationAllocation {
	return vacationapimodels.VacationAllocation{
		ID:               r.ID,
		UserID:           r.UserID,
		VacationPeriodID: r.VacationPeriodID,
		TotalDays:        r.TotalDays,
		CarriedOverDays:  r.CarriedOverDays,
		DaysUsed:         r.DaysUsed,
	}
}
