package dbmodels

import companyapimodels "vacation-planner-backend/models/api/company"

type Company struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex"`
}

func (r Company) ToModel() companyapimodels.Company {
	return companyapimodels.Company{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}
