package dbmodels

import (
	"fmt"
	"time"

	"vacation-planner-backend/models"
	userapimodels "vacation-planner-backend/models/api/user"
)

type User struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	// Empty until the user sets a password through the invite flow.
	HashedPassword string `gorm:"type:varchar(255)"`
	FirstName      string `gorm:"type:varchar(100)"`
	LastName       string `gorm:"type:varchar(100)"`
	Role           models.UserRole `gorm:"type:varchar(20);index"`
	CompanyID      string          `gorm:"index"`
	Company        *Company        `gorm:"constraint:OnDelete:CASCADE"`
	DepartmentID   *string         `gorm:"index"`
	Department     *Department     `gorm:"constraint:OnDelete:SET NULL"`
	IsActive       bool
	LastLogin      time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r User) ToModel() userapimodels.User {
	return userapimodels.User{
		ID:           r.ID,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         string(r.Role),
		CompanyID:    r.CompanyID,
		DepartmentID: r.DepartmentID,
		IsActive:     r.IsActive,
	}
}
