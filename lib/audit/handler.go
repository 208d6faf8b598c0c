// Package audit records who did what. The write path is fire-and-forget:
// an audit failure is logged but never fails the business operation.
package audit

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	auditstore "vacation-planner-backend/lib/audit/store"
	"vacation-planner-backend/models"
	auditapimodels "vacation-planner-backend/models/api/audit"
	dbmodels "vacation-planner-backend/models/db"
)

type Actor struct {
	UserID    string
	CompanyID string
	IPAddress string
}

type Provider interface {
	Log(actor Actor, action models.AuditAction, resourceType, resourceID string, details map[string]interface{})
	List(companyID string, filter auditapimodels.AuditFilter, page, limit int) (list []auditapimodels.AuditLog, rowCount int64, err error)
}

var Instance Provider

func NewHandler(DB *gorm.DB) {
	Instance = impl{
		store: auditstore.NewInstance(DB),
	}
}

type impl struct {
	store auditstore.Provider
}

func (i impl) Log(actor Actor, action models.AuditAction, resourceType, resourceID string, details map[string]interface{}) {
	actorID := actor.UserID
	rec := dbmodels.AuditLog{
		ActorID:      &actorID,
		CompanyID:    actor.CompanyID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		IPAddress:    actor.IPAddress,
	}
	if actorID == "" {
		rec.ActorID = nil
	}
	if _, err := i.store.Create(rec); err != nil {
		log.
			WithField("action", action).
			WithField("resource_id", resourceID).
			WithError(err).
			Error("failed to write audit record")
	}
}

func (i impl) List(companyID string, filter auditapimodels.AuditFilter, page, limit int) (list []auditapimodels.AuditLog, rowCount int64, err error) {
	recs, rowCount, err := i.store.List(companyID, filter, page, limit)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("failed to list audit records")
		return nil, 0, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}
