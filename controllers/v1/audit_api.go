package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	audithandler "vacation-planner-backend/lib/audit"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	auditapimodels "vacation-planner-backend/models/api/audit"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	app.Route("audit-logs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.AdminRequired())
		router.Get("", controller.list)
	})
}

// @Summary List audit log entries
// @Tags Audit
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   action	query	string	false	"filter by action"
// @Param   resource_type	query	string	false	"filter by resource type"
// @Param   page	query	int	false	"page number, starting at 1"
// @Param   limit	query	int	false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditapimodels.AuditLog}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/audit-logs [get]
func (c *auditApiController) list(ctx *fiber.Ctx) error {
	filter := auditapimodels.AuditFilter{
		Action:       ctx.Query("action"),
		ResourceType: ctx.Query("resource_type"),
		ResourceID:   ctx.Query("resource_id"),
		ActorID:      ctx.Query("actor_id"),
	}
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	list, rowCount, err := audithandler.Instance.List(middleware.GetUserCompany(ctx), filter, page, limit)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
