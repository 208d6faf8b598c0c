package departmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Department) (string, error)
	GetByID(departmentID string) (rec *dbmodels.Department, err error)
	ListByCompany(companyID string) (list []dbmodels.Department, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Department) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(departmentID string) (rec *dbmodels.Department, err error) {
	err = i.db.Model(dbmodels.Department{}).
		Where("id = ?", departmentID).
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

func (i impl) ListByCompany(companyID string) (list []dbmodels.Department, err error) {
	err = i.db.Model(dbmodels.Department{}).
		Where("company_id = ?", companyID).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
