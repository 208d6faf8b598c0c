package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	exporthandler "vacation-planner-backend/lib/export"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("vacation-requests", controller.vacationRequests)
	})
}

// @Summary Export vacation requests
// @Tags Export
// @Description Download requests as xlsx, csv or pdf, scoped to the caller's role
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   format	query	string	false	"xlsx (default), csv or pdf"
// @Param   status	query	string	false	"filter by status"
// @Param   team_id	query	string	false	"filter by team"
// @Param   user_id	query	string	false	"filter by user"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/export/vacation-requests [get]
func (c *exportApiController) vacationRequests(ctx *fiber.Ctx) error {
	format := exporthandler.Format(ctx.Query("format", string(exporthandler.FormatXLSX)))
	filter := vacationapimodels.ExportFilter{
		Status: ctx.Query("status"),
		TeamID: ctx.Query("team_id"),
		UserID: ctx.Query("user_id"),
	}
	if v := ctx.Query("start_date"); v != "" {
		date, err := vacationapimodels.ParseDate(v)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("start_date has an invalid format"))
		}
		filter.StartDate = &date
	}
	if v := ctx.Query("end_date"); v != "" {
		date, err := vacationapimodels.ParseDate(v)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("end_date has an invalid format"))
		}
		filter.EndDate = &date
	}

	result, err := exporthandler.Instance.ExportVacationRequests(c.Actor(ctx), format, filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, result.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, result.FileName))
	return ctx.Status(fiber.StatusOK).Send(result.Body)
}
