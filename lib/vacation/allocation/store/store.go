package allocationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.VacationAllocation) (string, error)
	Update(allocationID string, updMap map[string]interface{}) error
	Delete(allocationID string) error
	GetByID(allocationID string) (rec *dbmodels.VacationAllocation, err error)
	GetByUserAndPeriod(userID, periodID string) (rec *dbmodels.VacationAllocation, err error)
	ListByPeriod(periodID string) (list []dbmodels.VacationAllocation, err error)
	ListByUser(userID string) (list []dbmodels.VacationAllocation, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.VacationAllocation) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(allocationID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.VacationAllocation{}).
		Where("id = ?", allocationID).
		Updates(updMap).
		Error
}

func (i impl) Delete(allocationID string) error {
	return i.db.
		Where("id = ?", allocationID).
		Delete(&dbmodels.VacationAllocation{}).
		Error
}

func (i impl) GetByID(allocationID string) (rec *dbmodels.VacationAllocation, err error) {
	err = i.db.Model(dbmodels.VacationAllocation{}).
		Where("id = ?", allocationID).
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

func (i impl) GetByUserAndPeriod(userID, periodID string) (rec *dbmodels.VacationAllocation, err error) {
	err = i.db.Model(dbmodels.VacationAllocation{}).
		Where("user_id = ? and vacation_period_id = ?", userID, periodID).
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

func (i impl) ListByPeriod(periodID string) (list []dbmodels.VacationAllocation, err error) {
	err = i.db.Model(dbmodels.VacationAllocation{}).
		Where("vacation_period_id = ?", periodID).
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

func (i impl) ListByUser(userID string) (list []dbmodels.VacationAllocation, err error) {
	err = i.db.Model(dbmodels.VacationAllocation{}).
		Where("user_id = ?", userID).
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
