package requeststore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vacation-planner-backend/models"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.VacationRequest) (string, error)
	Update(requestID string, updMap map[string]interface{}) error
	GetByID(requestID string) (rec *dbmodels.VacationRequest, err error)
	ListByUser(userID string, filter vacationapimodels.VacationRequestFilter) (list []dbmodels.VacationRequest, err error)
	ListActiveByUser(userID string) (list []dbmodels.VacationRequest, err error)
	SumDays(userID, periodID string, status models.VacationStatus) (float64, error)
	ListPendingByTeams(teamIDs []string) (list []dbmodels.VacationRequest, err error)
	ListPendingWithTeam(companyID string) (list []dbmodels.VacationRequest, err error)
	ListForExport(companyID string, userIDs, teamIDs []string, filter vacationapimodels.ExportFilter) (list []dbmodels.VacationRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.VacationRequest) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(requestID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.VacationRequest{}).
		Where("id = ?", requestID).
		Updates(updMap).
		Error
}

func (i impl) GetByID(requestID string) (rec *dbmodels.VacationRequest, err error) {
	err = i.db.Model(dbmodels.VacationRequest{}).
		Where("id = ?", requestID).
		Preload("User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByUser(userID string, filter vacationapimodels.VacationRequestFilter) (list []dbmodels.VacationRequest, err error) {
	tx := i.db.Model(dbmodels.VacationRequest{}).
		Where("user_id = ?", userID)
	if filter.StartDate != nil {
		tx = tx.Where("end_date >= ?", filter.StartDate.Time)
	}
	if filter.EndDate != nil {
		tx = tx.Where("start_date <= ?", filter.EndDate.Time)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.
		Order("start_date desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ListActiveByUser returns the user's non-cancelled requests; the overlap
// check runs against this set.
func (i impl) ListActiveByUser(userID string) (list []dbmodels.VacationRequest, err error) {
	err = i.db.Model(dbmodels.VacationRequest{}).
		Where("user_id = ? and status <> ?", userID, models.VacationStatusCancelled).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) SumDays(userID, periodID string, status models.VacationStatus) (sum float64, err error) {
	err = i.db.Model(dbmodels.VacationRequest{}).
		Where("user_id = ? and vacation_period_id = ? and status = ?", userID, periodID, status).
		Select("coalesce(sum(days_count), 0)").
		Scan(&sum).
		Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

func (i impl) ListPendingByTeams(teamIDs []string) (list []dbmodels.VacationRequest, err error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	err = i.db.Model(dbmodels.VacationRequest{}).
		Where("status = ? and team_id in ?", models.VacationStatusPending, teamIDs).
		Preload("User").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ListPendingWithTeam returns every pending team-bound request of a company,
// the admin's approval queue.
func (i impl) ListPendingWithTeam(companyID string) (list []dbmodels.VacationRequest, err error) {
	err = i.db.Model(dbmodels.VacationRequest{}).
		Joins("join users on users.id = vacation_requests.user_id").
		Where("users.company_id = ?", companyID).
		Where("vacation_requests.status = ? and vacation_requests.team_id is not null", models.VacationStatusPending).
		Preload("User").
		Order("vacation_requests.created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListForExport(companyID string, userIDs, teamIDs []string, filter vacationapimodels.ExportFilter) (list []dbmodels.VacationRequest, err error) {
	tx := i.db.Model(dbmodels.VacationRequest{}).
		Joins("join users on users.id = vacation_requests.user_id").
		Where("users.company_id = ?", companyID)
	if len(userIDs) > 0 {
		tx = tx.Where("vacation_requests.user_id in ?", userIDs)
	}
	if len(teamIDs) > 0 {
		tx = tx.Where("vacation_requests.team_id in ?", teamIDs)
	}
	if filter.StartDate != nil {
		tx = tx.Where("vacation_requests.end_date >= ?", filter.StartDate.Time)
	}
	if filter.EndDate != nil {
		tx = tx.Where("vacation_requests.start_date <= ?", filter.EndDate.Time)
	}
	if filter.Status != "" {
		tx = tx.Where("vacation_requests.status = ?", filter.Status)
	}
	if filter.UserID != "" {
		tx = tx.Where("vacation_requests.user_id = ?", filter.UserID)
	}
	err = tx.
		Preload(clause.Associations).
		Order("vacation_requests.start_date desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// DecisionUpdate is the field set written when a pending request is decided.
func DecisionUpdate(status models.VacationStatus, approverID string, at time.Time) map[string]interface{} {
	return map[string]interface{}{
		"status":      status,
		"approver_id": approverID,
		"approved_at": at,
	}
}
