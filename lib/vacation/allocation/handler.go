// Package allocation manages per-user day allocations: one row per
// (user, vacation period), enforced both here and by a unique index.
package allocation

import (
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/audit"
	usersstore "vacation-planner-backend/lib/users/store"
	"vacation-planner-backend/lib/utils/apperrors"
	allocationstore "vacation-planner-backend/lib/vacation/allocation/store"
	periodstore "vacation-planner-backend/lib/vacation/period/store"
	"vacation-planner-backend/models"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(actor models.Actor, payload vacationapimodels.CreateVacationAllocation) (vacationapimodels.VacationAllocation, error)
	Update(actor models.Actor, allocationID string, payload vacationapimodels.UpdateVacationAllocation) (vacationapimodels.VacationAllocation, error)
	Delete(actor models.Actor, allocationID string) error
	ListByPeriod(actor models.Actor, periodID string) ([]vacationapimodels.VacationAllocation, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       allocationstore.NewInstance(db.DB),
		periodStore: periodstore.NewInstance(db.DB),
		usersStore:  usersstore.NewInstance(db.DB),
		auditor:     audit.Instance,
	}
}

type impl struct {
	store       allocationstore.Provider
	periodStore periodstore.Provider
	usersStore  usersstore.Provider
	auditor     audit.Provider
}

func (i impl) Create(actor models.Actor, payload vacationapimodels.CreateVacationAllocation) (out vacationapimodels.VacationAllocation, err error) {
	user, err := i.usersStore.GetByID(payload.UserID)
	if err != nil {
		return out, err
	}
	if user == nil || user.CompanyID != actor.CompanyID {
		return out, apperrors.NotFound("user not found")
	}
	period, err := i.periodStore.GetByID(actor.CompanyID, payload.VacationPeriodID)
	if err != nil {
		return out, err
	}
	if period == nil {
		return out, apperrors.NotFound("vacation period not found")
	}
	existing, err := i.store.GetByUserAndPeriod(payload.UserID, payload.VacationPeriodID)
	if err != nil {
		return out, err
	}
	if existing != nil {
		return out, apperrors.Conflict("allocation already exists for this user and period")
	}

	id, err := i.store.Create(dbmodels.VacationAllocation{
		UserID:           payload.UserID,
		VacationPeriodID: payload.VacationPeriodID,
		TotalDays:        payload.TotalDays,
		CarriedOverDays:  payload.CarriedOverDays,
	})
	if err != nil {
		log.WithField("user_id", payload.UserID).WithError(err).Error("failed to create allocation")
		return out, err
	}
	i.auditor.Log(auditActor(actor), models.AuditAllocationCreated, "vacation_allocation", id, map[string]interface{}{
		"user_id":   payload.UserID,
		"period_id": payload.VacationPeriodID,
	})
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		return out, err
	}
	return created.ToModel(), nil
}

func (i impl) Update(actor models.Actor, allocationID string, payload vacationapimodels.UpdateVacationAllocation) (out vacationapimodels.VacationAllocation, err error) {
	rec, err := i.loadScoped(actor, allocationID)
	if err != nil {
		return out, err
	}
	updMap := map[string]interface{}{}
	if payload.TotalDays != nil {
		updMap["total_days"] = *payload.TotalDays
	}
	if payload.CarriedOverDays != nil {
		updMap["carried_over_days"] = *payload.CarriedOverDays
	}
	if len(updMap) > 0 {
		if err = i.store.Update(rec.ID, updMap); err != nil {
			log.WithField("allocation_id", rec.ID).WithError(err).Error("failed to update allocation")
			return out, err
		}
		i.auditor.Log(auditActor(actor), models.AuditAllocationUpdated, "vacation_allocation", rec.ID, map[string]interface{}{
			"user_id": rec.UserID,
		})
	}
	updated, err := i.store.GetByID(rec.ID)
	if err != nil || updated == nil {
		return out, err
	}
	return updated.ToModel(), nil
}

func (i impl) Delete(actor models.Actor, allocationID string) error {
	rec, err := i.loadScoped(actor, allocationID)
	if err != nil {
		return err
	}
	if err = i.store.Delete(rec.ID); err != nil {
		log.WithField("allocation_id", rec.ID).WithError(err).Error("failed to delete allocation")
		return err
	}
	i.auditor.Log(auditActor(actor), models.AuditAllocationDeleted, "vacation_allocation", rec.ID, map[string]interface{}{
		"user_id": rec.UserID,
	})
	return nil
}

func (i impl) ListByPeriod(actor models.Actor, periodID string) (list []vacationapimodels.VacationAllocation, err error) {
	period, err := i.periodStore.GetByID(actor.CompanyID, periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, apperrors.NotFound("vacation period not found")
	}
	recs, err := i.store.ListByPeriod(periodID)
	if err != nil {
		log.WithField("period_id", periodID).WithError(err).Error("failed to list allocations")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// loadScoped resolves an allocation and verifies it belongs to the actor's
// company through its owning user.
func (i impl) loadScoped(actor models.Actor, allocationID string) (*dbmodels.VacationAllocation, error) {
	rec, err := i.store.GetByID(allocationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NotFound("allocation not found")
	}
	user, err := i.usersStore.GetByID(rec.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != actor.CompanyID {
		return nil, apperrors.NotFound("allocation not found")
	}
	return rec, nil
}

func auditActor(actor models.Actor) audit.Actor {
	return audit.Actor{UserID: actor.UserID, CompanyID: actor.CompanyID, IPAddress: actor.IPAddress}
}
