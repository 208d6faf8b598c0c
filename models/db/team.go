package dbmodels

import (
	"time"

	teamapimodels "vacation-planner-backend/models/api/team"
)

type Team struct {
	BaseModel
	CompanyID string   `gorm:"index:idx_teams_company_name"`
	Company   *Company `gorm:"constraint:OnDelete:CASCADE"`
	Name      string   `gorm:"type:varchar(255);index:idx_teams_company_name"`
}

func (r Team) ToModel() teamapimodels.Team {
	return teamapimodels.Team{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Name:      r.Name,
	}
}

type TeamMembership struct {
	BaseModel
	UserID   string `gorm:"uniqueIndex:uq_user_team"`
	User     *User  `gorm:"constraint:OnDelete:CASCADE"`
	TeamID   string `gorm:"uniqueIndex:uq_user_team"`
	Team     *Team  `gorm:"constraint:OnDelete:CASCADE"`
	JoinedAt time.Time
}

type TeamManagerAssignment struct {
	BaseModel
	UserID     string `gorm:"uniqueIndex:uq_manager_team"`
	User       *User  `gorm:"constraint:OnDelete:CASCADE"`
	TeamID     string `gorm:"uniqueIndex:uq_manager_team"`
	Team       *Team  `gorm:"constraint:OnDelete:CASCADE"`
	AssignedAt time.Time
}
