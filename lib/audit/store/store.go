package auditstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	auditapimodels "vacation-planner-backend/models/api/audit"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuditLog) (string, error)
	List(companyID string, filter auditapimodels.AuditFilter, page, limit int) (list []dbmodels.AuditLog, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(companyID string, filter auditapimodels.AuditFilter, page, limit int) (list []dbmodels.AuditLog, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.AuditLog{}).
		Where("company_id = ?", companyID)
	if filter.Action != "" {
		tx = tx.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		tx = tx.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		tx = tx.Where("resource_id = ?", filter.ResourceID)
	}
	if filter.ActorID != "" {
		tx = tx.Where("actor_id = ?", filter.ActorID)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Preload("Actor").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}
