package initializers

import (
	"context"

	"vacation-planner-backend/config"
	"vacation-planner-backend/db"
	"vacation-planner-backend/fiberlog"
	audithandler "vacation-planner-backend/lib/audit"
	authhandler "vacation-planner-backend/lib/auth"
	tokencleanupworker "vacation-planner-backend/lib/auth/token-cleanup-worker"
	companyhandler "vacation-planner-backend/lib/company"
	departmenthandler "vacation-planner-backend/lib/department"
	exporthandler "vacation-planner-backend/lib/export"
	csvexport "vacation-planner-backend/lib/export/csv"
	pdfexport "vacation-planner-backend/lib/export/pdf"
	xlsexport "vacation-planner-backend/lib/export/xls"
	teamhandler "vacation-planner-backend/lib/team"
	usershandler "vacation-planner-backend/lib/users"
	allocationhandler "vacation-planner-backend/lib/vacation/allocation"
	balancehandler "vacation-planner-backend/lib/vacation/balance"
	periodhandler "vacation-planner-backend/lib/vacation/period"
	requesthandler "vacation-planner-backend/lib/vacation/request"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	audithandler.NewHandler(db.DB)
	authhandler.NewHandler()
	companyhandler.NewHandler()
	departmenthandler.NewHandler()
	usershandler.NewHandler()
	teamhandler.NewHandler()
	periodhandler.NewHandler()
	allocationhandler.NewHandler()
	requesthandler.NewHandler()
	balancehandler.NewHandler()
	xlsexport.NewHandler()
	csvexport.NewHandler()
	pdfexport.NewHandler()
	exporthandler.NewHandler()
	tokencleanupworker.StartWorker(ctx)
}
