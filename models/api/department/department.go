package departmentapimodels

import (
	"github.com/pkg/errors"
)

type Department struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

type CreateDepartment struct {
	Name string `json:"name"`
}

func (r CreateDepartment) Validate() error {
	if r.Name == "" {
		return errors.New("department name is required")
	}
	return nil
}
