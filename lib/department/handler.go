// Package department manages the company's departments (functional areas).
// Users may optionally be attached to a department for reporting.
package department

import (
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/audit"
	departmentstore "vacation-planner-backend/lib/department/store"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/models"
	departmentapimodels "vacation-planner-backend/models/api/department"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(actor models.Actor, payload departmentapimodels.CreateDepartment) (departmentapimodels.Department, error)
	GetByID(actor models.Actor, departmentID string) (departmentapimodels.Department, error)
	List(actor models.Actor) ([]departmentapimodels.Department, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   departmentstore.NewInstance(db.DB),
		auditor: audit.Instance,
	}
}

type impl struct {
	store   departmentstore.Provider
	auditor audit.Provider
}

func (i impl) Create(actor models.Actor, payload departmentapimodels.CreateDepartment) (out departmentapimodels.Department, err error) {
	id, err := i.store.Create(dbmodels.Department{
		CompanyID: actor.CompanyID,
		Name:      payload.Name,
	})
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to create department")
		return out, err
	}
	i.auditor.Log(auditActor(actor), models.AuditDepartmentCreated, "department", id, map[string]interface{}{
		"name": payload.Name,
	})
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		return out, err
	}
	return created.ToModel(), nil
}

func (i impl) GetByID(actor models.Actor, departmentID string) (out departmentapimodels.Department, err error) {
	rec, err := i.store.GetByID(departmentID)
	if err != nil {
		log.WithField("department_id", departmentID).WithError(err).Error("failed to load department")
		return out, err
	}
	if rec == nil || rec.CompanyID != actor.CompanyID {
		return out, apperrors.NotFound("department not found")
	}
	return rec.ToModel(), nil
}

func (i impl) List(actor models.Actor) (list []departmentapimodels.Department, err error) {
	recs, err := i.store.ListByCompany(actor.CompanyID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to list departments")
		return nil, err
	}
	list = make([]departmentapimodels.Department, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func auditActor(actor models.Actor) audit.Actor {
	return audit.Actor{UserID: actor.UserID, CompanyID: actor.CompanyID, IPAddress: actor.IPAddress}
}
