package companyapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCompany struct {
	Name string `json:"name"`
}

func (r CreateCompany) Validate() error {
	if r.Name == "" {
		return errors.New("company name is required")
	}
	return nil
}
