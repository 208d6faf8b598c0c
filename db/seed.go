package db

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vacation-planner-backend/config"
	"vacation-planner-backend/lib/utils/authutils"
	"vacation-planner-backend/models"
	dbmodels "vacation-planner-backend/models/db"
)

// SeedAdmin makes sure the configured bootstrap admin, its company and a
// default vacation period for the current year exist. Safe to run on every
// start.
func SeedAdmin() error {
	if config.Conf.Admin.Password == "" {
		log.Info("admin password not configured, skipping admin seed")
		return nil
	}
	return DB.Transaction(func(tx *gorm.DB) error {
		var company dbmodels.Company
		err := tx.Where("name = ?", config.Conf.Admin.Company).First(&company).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			company = dbmodels.Company{Name: config.Conf.Admin.Company}
			if err = tx.Save(&company).Error; err != nil {
				return errors.Wrap(err, "failed to create seed company")
			}
		} else if err != nil {
			return err
		}

		var user dbmodels.User
		err = tx.Where("email = ?", config.Conf.Admin.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, hashErr := authutils.HashPassword(config.Conf.Admin.Password)
			if hashErr != nil {
				return hashErr
			}
			user = dbmodels.User{
				Email:          config.Conf.Admin.Email,
				HashedPassword: hash,
				FirstName:      config.Conf.Admin.FirstName,
				LastName:       config.Conf.Admin.LastName,
				Role:           models.UserRoleAdmin,
				CompanyID:      company.ID,
				IsActive:       true,
			}
			if err = tx.Save(&user).Error; err != nil {
				return errors.Wrap(err, "failed to create seed admin")
			}
			log.WithField("email", user.Email).Info("seeded bootstrap admin")
		} else if err != nil {
			return err
		}

		var count int64
		if err = tx.Model(&dbmodels.VacationPeriod{}).Where("company_id = ?", company.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			year := time.Now().Year()
			period := dbmodels.VacationPeriod{
				CompanyID: company.ID,
				Name:      fmt.Sprintf("%d", year),
				StartDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
				IsDefault: true,
			}
			if err = tx.Save(&period).Error; err != nil {
				return errors.Wrap(err, "failed to create default vacation period")
			}
		}
		return nil
	})
}
