package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "vacation-planner-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	for _, model := range []interface{}{
		&dbmodels.Company{},
		&dbmodels.Department{},
		&dbmodels.User{},
		&dbmodels.Team{},
		&dbmodels.TeamMembership{},
		&dbmodels.TeamManagerAssignment{},
		&dbmodels.VacationPeriod{},
		&dbmodels.VacationAllocation{},
		&dbmodels.VacationRequest{},
		&dbmodels.AuditLog{},
		&dbmodels.InviteToken{},
		&dbmodels.PasswordResetToken{},
		&dbmodels.RefreshToken{},
	} {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "failed to migrate %T", model)
		}
	}
	log.Info("migrations finished")
	return nil
}
