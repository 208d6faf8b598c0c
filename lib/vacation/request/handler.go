// Package request implements the vacation request lifecycle: pending is the
// only live state; approved, rejected and cancelled are terminal.
package request

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/config"
	"vacation-planner-backend/db"
	"vacation-planner-backend/lib/audit"
	teamstore "vacation-planner-backend/lib/team/store"
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
	Create(actor models.Actor, payload vacationapimodels.CreateVacationRequest) (vacationapimodels.VacationRequest, error)
	ListOwn(actor models.Actor, filter vacationapimodels.VacationRequestFilter) ([]vacationapimodels.VacationRequest, error)
	GetByID(actor models.Actor, requestID string) (vacationapimodels.VacationRequest, error)
	Cancel(actor models.Actor, requestID string) (vacationapimodels.VacationRequest, error)
	Decide(actor models.Actor, requestID string, action vacationapimodels.VacationRequestAction) (vacationapimodels.VacationRequest, error)
	Modify(actor models.Actor, requestID string, payload vacationapimodels.ModifyVacationRequest) (vacationapimodels.VacationRequest, error)
	ListPending(actor models.Actor, teamID string) ([]vacationapimodels.VacationRequest, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		requestStore:    requeststore.NewInstance(db.DB),
		periodStore:     periodstore.NewInstance(db.DB),
		allocationStore: allocationstore.NewInstance(db.DB),
		teamStore:       teamstore.NewInstance(db.DB),
		auditor:         audit.Instance,
		defaultDays:     decimal.NewFromFloat(config.Conf.Vacation.DefaultAllocationDays),
	}
}

type impl struct {
	requestStore    requeststore.Provider
	periodStore     periodstore.Provider
	allocationStore allocationstore.Provider
	teamStore       teamstore.Provider
	auditor         audit.Provider
	defaultDays     decimal.Decimal
}

func (i impl) Create(actor models.Actor, payload vacationapimodels.CreateVacationRequest) (out vacationapimodels.VacationRequest, err error) {
	logger := log.WithField("user_id", actor.UserID)

	if payload.EndDate.Before(payload.StartDate.Time) {
		return out, apperrors.Validation("end date must not be before start date")
	}

	daysCount := engine.BusinessDays(payload.StartDate.Time, payload.EndDate.Time)

	periods, err := i.periodStore.ListByCompany(actor.CompanyID)
	if err != nil {
		logger.WithError(err).Error("failed to load company vacation periods")
		return out, err
	}
	period := engine.PeriodFor(payload.StartDate.Time, periods)
	if period == nil {
		return out, apperrors.Conflict("no vacation period found for the requested date")
	}

	allocation, err := i.allocationStore.GetByUserAndPeriod(actor.UserID, period.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load allocation")
		return out, err
	}
	if allocation != nil {
		approved, err := i.requestStore.SumDays(actor.UserID, period.ID, models.VacationStatusApproved)
		if err != nil {
			logger.WithError(err).Error("failed to sum approved days")
			return out, err
		}
		decision := engine.EvaluateBalance(allocation, decimal.NewFromFloat(approved), daysCount, i.defaultDays)
		if !decision.Allowed {
			return out, apperrors.Conflict(fmt.Sprintf(
				"insufficient vacation balance. Requested: %s, Remaining: %s",
				daysCount.String(), decision.Remaining.String()))
		}
	}

	existing, err := i.requestStore.ListActiveByUser(actor.UserID)
	if err != nil {
		logger.WithError(err).Error("failed to load existing requests")
		return out, err
	}
	ranges := make([]engine.DateRange, 0, len(existing))
	for _, rec := range existing {
		ranges = append(ranges, engine.DateRange{Start: rec.StartDate, End: rec.EndDate})
	}
	if engine.Overlaps(engine.DateRange{Start: payload.StartDate.Time, End: payload.EndDate.Time}, ranges) {
		return out, apperrors.Conflict("overlapping vacation request exists")
	}

	if payload.TeamID != nil {
		isMember, err := i.teamStore.IsMember(actor.UserID, *payload.TeamID)
		if err != nil {
			logger.WithError(err).Error("failed to check team membership")
			return out, err
		}
		if !isMember {
			return out, apperrors.Validation("user does not belong to the specified team")
		}
	}

	vacationType := models.VacationType(payload.VacationType)
	if vacationType == "" {
		vacationType = models.VacationTypeAnnual
	}
	periodID := period.ID
	days, _ := daysCount.Float64()
	rec := dbmodels.VacationRequest{
		UserID:           actor.UserID,
		TeamID:           payload.TeamID,
		VacationPeriodID: &periodID,
		StartDate:        payload.StartDate.Time,
		EndDate:          payload.EndDate.Time,
		VacationType:     vacationType,
		DaysCount:        days,
		Status:           models.VacationStatusPending,
		Reason:           payload.Reason,
	}
	id, err := i.requestStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create vacation request")
		return out, err
	}
	created, err := i.requestStore.GetByID(id)
	if err != nil || created == nil {
		return out, err
	}
	return created.ToModel(), nil
}

func (i impl) ListOwn(actor models.Actor, filter vacationapimodels.VacationRequestFilter) (list []vacationapimodels.VacationRequest, err error) {
	recs, err := i.requestStore.ListByUser(actor.UserID, filter)
	if err != nil {
		log.WithField("user_id", actor.UserID).WithError(err).Error("failed to list vacation requests")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(actor models.Actor, requestID string) (out vacationapimodels.VacationRequest, err error) {
	rec, err := i.loadScoped(actor, requestID)
	if err != nil {
		return out, err
	}
	if rec.UserID != actor.UserID && !actor.Role.IsAdmin() {
		allowed, err := i.isManagerOfRequest(actor, rec)
		if err != nil {
			return out, err
		}
		if !allowed {
			return out, apperrors.NotAuthorized("not authorized to view this request")
		}
	}
	return rec.ToModel(), nil
}

func (i impl) Cancel(actor models.Actor, requestID string) (out vacationapimodels.VacationRequest, err error) {
	rec, err := i.loadScoped(actor, requestID)
	if err != nil {
		return out, err
	}
	if rec.UserID != actor.UserID {
		return out, apperrors.NotAuthorized("only the owner can cancel this request")
	}
	if !rec.IsPending() {
		return out, apperrors.Validation("can only cancel pending requests")
	}
	err = i.requestStore.Update(rec.ID, map[string]interface{}{"status": models.VacationStatusCancelled})
	if err != nil {
		log.WithField("request_id", rec.ID).WithError(err).Error("failed to cancel vacation request")
		return out, err
	}
	i.auditor.Log(auditActor(actor), models.AuditRequestCancelled, "vacation_request", rec.ID, map[string]interface{}{
		"dates": fmt.Sprintf("%s - %s", rec.StartDate.Format("2006-01-02"), rec.EndDate.Format("2006-01-02")),
	})
	updated, err := i.requestStore.GetByID(rec.ID)
	if err != nil || updated == nil {
		return out, err
	}
	return updated.ToModel(), nil
}

// Decide approves or rejects a pending request. Manager scope over the
// request's team is re-checked here on every call.
func (i impl) Decide(actor models.Actor, requestID string, action vacationapimodels.VacationRequestAction) (out vacationapimodels.VacationRequest, err error) {
	rec, err := i.loadScoped(actor, requestID)
	if err != nil {
		return out, err
	}
	if !rec.IsPending() {
		return out, apperrors.Validation("can only act on pending requests")
	}
	if !actor.Role.IsAdmin() {
		allowed, err := i.isManagerOfRequest(actor, rec)
		if err != nil {
			return out, err
		}
		if !allowed {
			return out, apperrors.NotAuthorized("not authorized to approve requests for this team")
		}
	}

	status := models.VacationStatusApproved
	auditAction := models.AuditRequestApproved
	if action.Action == "reject" {
		status = models.VacationStatusRejected
		auditAction = models.AuditRequestRejected
	}
	err = i.requestStore.Update(rec.ID, requeststore.DecisionUpdate(status, actor.UserID, time.Now()))
	if err != nil {
		log.WithField("request_id", rec.ID).WithError(err).Error("failed to store request decision")
		return out, err
	}
	i.auditor.Log(auditActor(actor), auditAction, "vacation_request", rec.ID, map[string]interface{}{
		"user_id": rec.UserID,
		"dates":   fmt.Sprintf("%s - %s", rec.StartDate.Format("2006-01-02"), rec.EndDate.Format("2006-01-02")),
		"comment": action.Comment,
	})
	updated, err := i.requestStore.GetByID(rec.ID)
	if err != nil || updated == nil {
		return out, err
	}
	return updated.ToModel(), nil
}

// Modify updates dates, type or reason regardless of the current status and
// deliberately skips day-count, overlap and balance recomputation.
func (i impl) Modify(actor models.Actor, requestID string, payload vacationapimodels.ModifyVacationRequest) (out vacationapimodels.VacationRequest, err error) {
	rec, err := i.loadScoped(actor, requestID)
	if err != nil {
		return out, err
	}
	if !actor.Role.IsAdmin() {
		allowed, err := i.isManagerOfRequest(actor, rec)
		if err != nil {
			return out, err
		}
		if !allowed {
			return out, apperrors.NotAuthorized("not authorized to modify requests for this team")
		}
	}

	updMap := map[string]interface{}{}
	changes := map[string]interface{}{}
	if payload.StartDate != nil && !payload.StartDate.Equal(rec.StartDate) {
		updMap["start_date"] = payload.StartDate.Time
		changes["start_date"] = map[string]string{"from": rec.StartDate.Format("2006-01-02"), "to": payload.StartDate.String()}
	}
	if payload.EndDate != nil && !payload.EndDate.Equal(rec.EndDate) {
		updMap["end_date"] = payload.EndDate.Time
		changes["end_date"] = map[string]string{"from": rec.EndDate.Format("2006-01-02"), "to": payload.EndDate.String()}
	}
	if payload.VacationType != nil && models.VacationType(*payload.VacationType) != rec.VacationType {
		updMap["vacation_type"] = *payload.VacationType
		changes["vacation_type"] = map[string]string{"from": string(rec.VacationType), "to": *payload.VacationType}
	}
	if payload.Reason != nil && *payload.Reason != rec.Reason {
		updMap["reason"] = *payload.Reason
		changes["reason"] = map[string]string{"from": rec.Reason, "to": *payload.Reason}
	}
	if len(updMap) > 0 {
		if err = i.requestStore.Update(rec.ID, updMap); err != nil {
			log.WithField("request_id", rec.ID).WithError(err).Error("failed to modify vacation request")
			return out, err
		}
		i.auditor.Log(auditActor(actor), models.AuditRequestModified, "vacation_request", rec.ID, map[string]interface{}{
			"changes": changes,
		})
	}
	updated, err := i.requestStore.GetByID(rec.ID)
	if err != nil || updated == nil {
		return out, err
	}
	return updated.ToModel(), nil
}

func (i impl) ListPending(actor models.Actor, teamID string) (list []vacationapimodels.VacationRequest, err error) {
	var recs []dbmodels.VacationRequest
	if actor.Role.IsAdmin() {
		recs, err = i.requestStore.ListPendingWithTeam(actor.CompanyID)
	} else {
		teamIDs, listErr := i.teamStore.ListManagedTeamIDs(actor.UserID)
		if listErr != nil {
			return nil, listErr
		}
		if teamID != "" {
			filtered := teamIDs[:0]
			for _, id := range teamIDs {
				if id == teamID {
					filtered = append(filtered, id)
				}
			}
			teamIDs = filtered
		}
		recs, err = i.requestStore.ListPendingByTeams(teamIDs)
	}
	if err != nil {
		log.WithField("user_id", actor.UserID).WithError(err).Error("failed to list pending requests")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// loadScoped fetches a request and hides it from other tenants: an id that
// belongs to another company reads as not-found, never as forbidden.
func (i impl) loadScoped(actor models.Actor, requestID string) (*dbmodels.VacationRequest, error) {
	rec, err := i.requestStore.GetByID(requestID)
	if err != nil {
		log.WithField("request_id", requestID).WithError(err).Error("failed to load vacation request")
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NotFound("vacation request not found")
	}
	if rec.User != nil && rec.User.CompanyID != actor.CompanyID {
		return nil, apperrors.NotFound("vacation request not found")
	}
	return rec, nil
}

func (i impl) isManagerOfRequest(actor models.Actor, rec *dbmodels.VacationRequest) (bool, error) {
	if rec.TeamID == nil {
		return false, nil
	}
	return i.teamStore.IsManagerOf(actor.UserID, *rec.TeamID)
}

func auditActor(actor models.Actor) audit.Actor {
	return audit.Actor{
		UserID:    actor.UserID,
		CompanyID: actor.CompanyID,
		IPAddress: actor.IPAddress,
	}
}
