// Package period manages company vacation periods. Periods of one company
// must not overlap and at most one of them carries the default flag.
package period

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/audit"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/lib/vacation/engine"
	periodstore "vacation-planner-backend/lib/vacation/period/store"
	"vacation-planner-backend/models"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(actor models.Actor, payload vacationapimodels.CreateVacationPeriod) (vacationapimodels.VacationPeriod, error)
	Update(actor models.Actor, periodID string, payload vacationapimodels.UpdateVacationPeriod) (vacationapimodels.VacationPeriod, error)
	Delete(actor models.Actor, periodID string) error
	GetByID(actor models.Actor, periodID string) (vacationapimodels.VacationPeriod, error)
	List(actor models.Actor) ([]vacationapimodels.VacationPeriod, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   periodstore.NewInstance(db.DB),
		auditor: audit.Instance,
	}
}

type impl struct {
	store   periodstore.Provider
	auditor audit.Provider
}

func (i impl) Create(actor models.Actor, payload vacationapimodels.CreateVacationPeriod) (out vacationapimodels.VacationPeriod, err error) {
	existing, err := i.store.ListByCompany(actor.CompanyID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to load vacation periods")
		return out, err
	}
	if engine.PeriodsOverlap(payload.StartDate.Time, payload.EndDate.Time, existing, "") {
		return out, apperrors.Conflict("vacation period overlaps an existing period")
	}

	rec := dbmodels.VacationPeriod{
		CompanyID: actor.CompanyID,
		Name:      payload.Name,
		StartDate: payload.StartDate.Time,
		EndDate:   payload.EndDate.Time,
		IsDefault: payload.IsDefault,
	}
	var id string
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := periodstore.NewInstance(tx)
		var txErr error
		id, txErr = txStore.Create(rec)
		if txErr != nil {
			return txErr
		}
		if payload.IsDefault {
			return txStore.UnsetDefaults(actor.CompanyID, id)
		}
		return nil
	})
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to create vacation period")
		return out, err
	}
	i.auditor.Log(auditActor(actor), models.AuditPeriodCreated, "vacation_period", id, map[string]interface{}{
		"name": payload.Name,
	})
	created, err := i.store.GetByID(actor.CompanyID, id)
	if err != nil || created == nil {
		return out, err
	}
	return created.ToModel(), nil
}

func (i impl) Update(actor models.Actor, periodID string, payload vacationapimodels.UpdateVacationPeriod) (out vacationapimodels.VacationPeriod, err error) {
	rec, err := i.store.GetByID(actor.CompanyID, periodID)
	if err != nil {
		return out, err
	}
	if rec == nil {
		return out, apperrors.NotFound("vacation period not found")
	}

	start := rec.StartDate
	end := rec.EndDate
	if payload.StartDate != nil {
		start = payload.StartDate.Time
	}
	if payload.EndDate != nil {
		end = payload.EndDate.Time
	}
	if end.Before(start) {
		return out, apperrors.Validation("end date must not be before start date")
	}
	existing, err := i.store.ListByCompany(actor.CompanyID)
	if err != nil {
		return out, err
	}
	if engine.PeriodsOverlap(start, end, existing, rec.ID) {
		return out, apperrors.Conflict("vacation period overlaps an existing period")
	}

	updMap := map[string]interface{}{}
	if payload.Name != nil {
		updMap["name"] = *payload.Name
	}
	if payload.StartDate != nil {
		updMap["start_date"] = payload.StartDate.Time
	}
	if payload.EndDate != nil {
		updMap["end_date"] = payload.EndDate.Time
	}
	if payload.IsDefault != nil {
		updMap["is_default"] = *payload.IsDefault
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := periodstore.NewInstance(tx)
		if len(updMap) > 0 {
			if txErr := txStore.Update(rec.ID, updMap); txErr != nil {
				return txErr
			}
		}
		if payload.IsDefault != nil && *payload.IsDefault {
			return txStore.UnsetDefaults(actor.CompanyID, rec.ID)
		}
		return nil
	})
	if err != nil {
		log.WithField("period_id", rec.ID).WithError(err).Error("failed to update vacation period")
		return out, err
	}
	if len(updMap) > 0 {
		i.auditor.Log(auditActor(actor), models.AuditPeriodUpdated, "vacation_period", rec.ID, map[string]interface{}{
			"name": rec.Name,
		})
	}
	updated, err := i.store.GetByID(actor.CompanyID, rec.ID)
	if err != nil || updated == nil {
		return out, err
	}
	return updated.ToModel(), nil
}

func (i impl) Delete(actor models.Actor, periodID string) error {
	rec, err := i.store.GetByID(actor.CompanyID, periodID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("vacation period not found")
	}
	if err = i.store.Delete(rec.ID); err != nil {
		log.WithField("period_id", rec.ID).WithError(err).Error("failed to delete vacation period")
		return err
	}
	i.auditor.Log(auditActor(actor), models.AuditPeriodDeleted, "vacation_period", rec.ID, map[string]interface{}{
		"name": rec.Name,
	})
	return nil
}

func (i impl) GetByID(actor models.Actor, periodID string) (out vacationapimodels.VacationPeriod, err error) {
	rec, err := i.store.GetByID(actor.CompanyID, periodID)
	if err != nil {
		return out, err
	}
	if rec == nil {
		return out, apperrors.NotFound("vacation period not found")
	}
	return rec.ToModel(), nil
}

func (i impl) List(actor models.Actor) (list []vacationapimodels.VacationPeriod, err error) {
	recs, err := i.store.ListByCompany(actor.CompanyID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to list vacation periods")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func auditActor(actor models.Actor) audit.Actor {
	return audit.Actor{UserID: actor.UserID, CompanyID: actor.CompanyID, IPAddress: actor.IPAddress}
}
