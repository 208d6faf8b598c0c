package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"vacation-planner" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me-in-production" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"900" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"AUTH_JWT_REFRESH_EXPIRE_IN_SEC"`
		LockoutMaxAttempts    int    `default:"5" env:"AUTH_LOCKOUT_MAX_ATTEMPTS"`
		LockoutWindowInSec    int    `default:"900" env:"AUTH_LOCKOUT_WINDOW_IN_SEC"`
		InviteTTLInHours      int    `default:"72" env:"AUTH_INVITE_TTL_IN_HOURS"`
		ResetTTLInHours       int    `default:"2" env:"AUTH_RESET_TTL_IN_HOURS"`
	}
	Vacation struct {
		// Day budget assumed when a user has no allocation row for the period.
		DefaultAllocationDays float64 `default:"25.0" env:"VACATION_DEFAULT_ALLOCATION_DAYS"`
	}
	Smtp struct {
		User              string `default:"" env:"SMTP_USER"`
		Password          string `default:"" env:"SMTP_PASSWORD"`
		Host              string `default:"" env:"SMTP_HOST"`
		Port              string `default:"" env:"SMTP_PORT"`
		TLSEnabled        *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From              string `default:"noreply@example.com" env:"SMTP_FROM"`
		DomainForAppLinks string `default:"http://localhost:8000" env:"DOMAIN_FOR_APP_LINKS"`
	}
	Admin struct {
		Email     string `default:"admin@example.com" env:"ADMIN_EMAIL"`
		Password  string `default:"" env:"ADMIN_PASSWORD"`
		FirstName string `default:"Admin" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"User" env:"ADMIN_LAST_NAME"`
		Company   string `default:"Default Company" env:"ADMIN_COMPANY"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
