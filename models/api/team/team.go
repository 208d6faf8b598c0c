package teamapimodels

import "github.com/pkg/errors"

type Team struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

type CreateTeam struct {
	Name string `json:"name"`
}

func (r CreateTeam) Validate() error {
	if r.Name == "" {
		return errors.New("team name is required")
	}
	return nil
}

type UpdateTeam struct {
	Name string `json:"name"`
}

func (r UpdateTeam) Validate() error {
	if r.Name == "" {
		return errors.New("team name is required")
	}
	return nil
}
