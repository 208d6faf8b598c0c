package dbmodels

import (
	departmentapimodels "vacation-planner-backend/models/api/department"
)

type Department struct {
	BaseModel
	CompanyID string   `gorm:"index:idx_departments_company_name"`
	Company   *Company `gorm:"constraint:OnDelete:CASCADE"`
	Name      string   `gorm:"type:varchar(255);index:idx_departments_company_name"`
}

func (r Department) ToModel() departmentapimodels.Department {
	return departmentapimodels.Department{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Name:      r.Name,
	}
}
