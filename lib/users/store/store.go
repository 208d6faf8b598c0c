package usersstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vacation-planner-backend/models"
	dbmodels "vacation-planner-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	List(companyID string, role models.UserRole, departmentID string) (list []dbmodels.User, err error)
	ListByIDs(ids []string) (list []dbmodels.User, err error)
	SetLastLogin(userID string, at time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", email).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	err := i.db.
		Where("email = ?", email).
		First(&dbmodels.User{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) List(companyID string, role models.UserRole, departmentID string) (list []dbmodels.User, err error) {
	tx := i.db.Model(dbmodels.User{})
	if companyID != "" {
		tx = tx.Where("company_id = ?", companyID)
	}
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if departmentID != "" {
		tx = tx.Where("department_id = ?", departmentID)
	}
	err = tx.
		Order("last_name, first_name").
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

func (i impl) ListByIDs(ids []string) (list []dbmodels.User, err error) {
	if len(ids) == 0 {
		return nil, nil
	}
	err = i.db.Model(dbmodels.User{}).
		Where("id in ?", ids).
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

func (i impl) SetLastLogin(userID string, at time.Time) error {
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Update("last_login", at).
		Error
}
