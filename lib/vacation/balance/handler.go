// Package balance reports vacation balances per period: total available days,
// approved usage and what remains, plus pending days for visibility.
package balance

import (
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/config"
	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/utils/apperrors"
	allocationstore "vacation-planner-backend/lib/vacation/allocation/store"
	"vacation-planner-backend/lib/vacation/engine"
	periodstore "vacation-planner-backend/lib/vacation/period/store"
	requeststore "vacation-planner-backend/lib/vacation/request/store"
	"vacation-planner-backend/models"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Current(actor models.Actor) (vacationapimodels.VacationBalance, error)
	ForPeriod(actor models.Actor, periodID string) (vacationapimodels.VacationBalance, error)
	AllPeriods(actor models.Actor) ([]vacationapimodels.VacationBalance, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		periodStore:     periodstore.NewInstance(db.DB),
		allocationStore: allocationstore.NewInstance(db.DB),
		requestStore:    requeststore.NewInstance(db.DB),
		defaultDays:     decimal.NewFromFloat(config.Conf.Vacation.DefaultAllocationDays),
	}
}

type impl struct {
	periodStore     periodstore.Provider
	allocationStore allocationstore.Provider
	requestStore    requeststore.Provider
	defaultDays     decimal.Decimal
}

func (i impl) Current(actor models.Actor) (out vacationapimodels.VacationBalance, err error) {
	periods, err := i.periodStore.ListByCompany(actor.CompanyID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to load vacation periods")
		return out, err
	}
	period := engine.PeriodFor(time.Now(), periods)
	if period == nil {
		return out, apperrors.NotFound("no vacation period covers the current date")
	}
	return i.balanceFor(actor.UserID, *period)
}

func (i impl) ForPeriod(actor models.Actor, periodID string) (out vacationapimodels.VacationBalance, err error) {
	period, err := i.periodStore.GetByID(actor.CompanyID, periodID)
	if err != nil {
		log.WithField("period_id", periodID).WithError(err).Error("failed to load vacation period")
		return out, err
	}
	if period == nil {
		return out, apperrors.NotFound("vacation period not found")
	}
	return i.balanceFor(actor.UserID, *period)
}

func (i impl) AllPeriods(actor models.Actor) (list []vacationapimodels.VacationBalance, err error) {
	periods, err := i.periodStore.ListByCompany(actor.CompanyID)
	if err != nil {
		log.WithField("company_id", actor.CompanyID).WithError(err).Error("failed to load vacation periods")
		return nil, err
	}
	for _, period := range periods {
		balance, err := i.balanceFor(actor.UserID, period)
		if err != nil {
			return nil, err
		}
		list = append(list, balance)
	}
	return list, nil
}

func (i impl) balanceFor(userID string, period dbmodels.VacationPeriod) (out vacationapimodels.VacationBalance, err error) {
	allocation, err := i.allocationStore.GetByUserAndPeriod(userID, period.ID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load allocation")
		return out, err
	}
	approved, err := i.requestStore.SumDays(userID, period.ID, models.VacationStatusApproved)
	if err != nil {
		return out, err
	}
	pending, err := i.requestStore.SumDays(userID, period.ID, models.VacationStatusPending)
	if err != nil {
		return out, err
	}
	decision := engine.EvaluateBalance(allocation, decimal.NewFromFloat(approved), decimal.Zero, i.defaultDays)
	total, _ := decision.TotalAvailable.Float64()
	remaining, _ := decision.Remaining.Float64()
	out = vacationapimodels.VacationBalance{
		Period:         period.ToModel(),
		TotalAvailable: total,
		ApprovedDays:   approved,
		PendingDays:    pending,
		RemainingDays:  remaining,
	}
	if allocation != nil {
		allocModel := allocation.ToModel()
		out.Allocation = &allocModel
	}
	return out, nil
}
