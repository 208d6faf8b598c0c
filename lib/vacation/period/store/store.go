package periodstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.VacationPeriod) (string, error)
	Update(periodID string, updMap map[string]interface{}) error
	Delete(periodID string) error
	GetByID(companyID, periodID string) (rec *dbmodels.VacationPeriod, err error)
	ListByCompany(companyID string) (list []dbmodels.VacationPeriod, err error)
	GetDefault(companyID string) (rec *dbmodels.VacationPeriod, err error)
	UnsetDefaults(companyID, exceptID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.VacationPeriod) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(periodID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.VacationPeriod{}).
		Where("id = ?", periodID).
		Updates(updMap).
		Error
}

func (i impl) Delete(periodID string) error {
	return i.db.
		Where("id = ?", periodID).
		Delete(&dbmodels.VacationPeriod{}).
		Error
}

func (i impl) GetByID(companyID, periodID string) (rec *dbmodels.VacationPeriod, err error) {
	err = i.db.Model(dbmodels.VacationPeriod{}).
		Where("id = ? and company_id = ?", periodID, companyID).
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

func (i impl) ListByCompany(companyID string) (list []dbmodels.VacationPeriod, err error) {
	err = i.db.Model(dbmodels.VacationPeriod{}).
		Where("company_id = ?", companyID).
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

func (i impl) GetDefault(companyID string) (rec *dbmodels.VacationPeriod, err error) {
	err = i.db.Model(dbmodels.VacationPeriod{}).
		Where("company_id = ? and is_default = true", companyID).
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

// UnsetDefaults clears the default flag on every other period of the
// company; used inside the same transaction that sets a new default.
func (i impl) UnsetDefaults(companyID, exceptID string) error {
	tx := i.db.
		Model(&dbmodels.VacationPeriod{}).
		Where("company_id = ? and is_default = true", companyID)
	if exceptID != "" {
		tx = tx.Where("id <> ?", exceptID)
	}
	return tx.
		Updates(map[string]interface{}{"is_default": false, "updated_at": time.Now()}).
		Error
}
