package dbmodels

import (
	"time"

	"vacation-planner-backend/models"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
)

type VacationRequest struct {
	BaseModel
	UserID string `gorm:"index:idx_vr_user_dates"`
	User   *User  `gorm:"constraint:OnDelete:CASCADE"`
	TeamID *string `gorm:"index"`
	Team   *Team   `gorm:"constraint:OnDelete:SET NULL"`
	// Resolved from StartDate at creation time; nulled when the period is deleted.
	VacationPeriodID *string         `gorm:"index"`
	VacationPeriod   *VacationPeriod `gorm:"constraint:OnDelete:SET NULL"`
	StartDate        time.Time       `gorm:"type:date;index:idx_vr_user_dates"`
	EndDate          time.Time       `gorm:"type:date;index:idx_vr_user_dates"`
	VacationType     models.VacationType   `gorm:"type:varchar(50)"`
	DaysCount        float64
	Status           models.VacationStatus `gorm:"type:varchar(20);index"`
	Reason           string                `gorm:"type:text"`
	ApproverID       *string
	Approver         *User `gorm:"foreignKey:ApproverID;constraint:OnDelete:SET NULL"`
	// Set on both approve and reject ("decided at").
	ApprovedAt *time.Time
}

func (r VacationRequest) IsPending() bool {
	return r.Status == models.VacationStatusPending
}

func (r VacationRequest) ToModel() vacationapimodels.VacationRequest {
	out := vacationapimodels.VacationRequest{
		ID:           r.ID,
		UserID:       r.UserID,
		TeamID:       r.TeamID,
		PeriodID:     r.VacationPeriodID,
		StartDate:    vacationapimodels.NewDate(r.StartDate),
		EndDate:      vacationapimodels.NewDate(r.EndDate),
		VacationType: string(r.VacationType),
		DaysCount:    r.DaysCount,
		Status:       string(r.Status),
		Reason:       r.Reason,
		ApproverID:   r.ApproverID,
		ApprovedAt:   r.ApprovedAt,
		CreatedAt:    r.CreatedAt,
	}
	if r.User != nil {
		out.UserName = r.User.GetFullName()
	}
	return out
}
