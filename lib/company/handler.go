package company

import (
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/db"
	companystore "vacation-planner-backend/lib/company/store"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/models"
	companyapimodels "vacation-planner-backend/models/api/company"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(payload companyapimodels.CreateCompany) (companyapimodels.Company, error)
	Get(actor models.Actor) (companyapimodels.Company, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	store companystore.Provider
}

func (i impl) Create(payload companyapimodels.CreateCompany) (out companyapimodels.Company, err error) {
	existing, err := i.store.GetByName(payload.Name)
	if err != nil {
		log.WithField("name", payload.Name).WithError(err).Error("failed to check company name")
		return out, err
	}
	if existing != nil {
		return out, apperrors.Conflict("company with this name already exists")
	}
	id, err := i.store.Create(dbmodels.Company{Name: payload.Name})
	if err != nil {
		log.WithField("name", payload.Name).WithError(err).Error("failed to create company")
		return out, err
	}
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		return out, err
	}
	return created.ToModel(), nil
}

// Get returns the actor's own company.
func (i impl) Get(actor models.Actor) (out companyapimodels.Company, err error) {
	rec, err := i.store.GetByID(actor.CompanyID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to load company")
		return out, err
	}
	if rec == nil {
		return out, apperrors.NotFound("company not found")
	}
	return rec.ToModel(), nil
}
