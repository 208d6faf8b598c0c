package dbmodels

import (
	"time"

	vacationapimodels "vacation-planner-backend/models/api/vacation"
)

type VacationPeriod struct {
	BaseModel
	CompanyID string    `gorm:"index:idx_vacation_periods_dates"`
	Company   *Company  `gorm:"constraint:OnDelete:CASCADE"`
	Name      string    `gorm:"type:varchar(100)"`
	StartDate time.Time `gorm:"type:date;index:idx_vacation_periods_dates"`
	EndDate   time.Time `gorm:"type:date;index:idx_vacation_periods_dates"`
	IsDefault bool
}

// Contains reports whether the date falls inside [StartDate, EndDate], both ends inclusive.
func (r VacationPeriod) Contains(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}

func (r VacationPeriod) ToModel() vacationapimodels.VacationPeriod {
	return vacationapimodels.VacationPeriod{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Name:      r.Name,
		StartDate: vacationapimodels.NewDate(r.StartDate),
		EndDate:   vacationapimodels.NewDate(r.EndDate),
		IsDefault: r.IsDefault,
	}
}
