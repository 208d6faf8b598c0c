package companystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Company) (string, error)
	GetByID(companyID string) (rec *dbmodels.Company, err error)
	GetByName(name string) (rec *dbmodels.Company, err error)
	List() (list []dbmodels.Company, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID string) (rec *dbmodels.Company, err error) {
	err = i.db.Model(dbmodels.Company{}).
		Where("id = ?", companyID).
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

func (i impl) GetByName(name string) (rec *dbmodels.Company, err error) {
	err = i.db.Model(dbmodels.Company{}).
		Where("name = ?", name).
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

func (i impl) List() (list []dbmodels.Company, err error) {
	err = i.db.Model(dbmodels.Company{}).
		Order("name").
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
