package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	balancehandler "vacation-planner-backend/lib/vacation/balance"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
)

type balanceApiController struct {
	controllers.BaseAPIController
}

func InitBalanceApiRouters(app *fiber.App) {
	controller := balanceApiController{}
	app.Route("me", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("vacation-balance", controller.current)
		router.Get("vacation-balances", controller.allPeriods)
	})
}

// @Summary Current vacation balance
// @Tags Vacation balance
// @Description Balance for the period containing today, or for period_id when given
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   period_id	query	string	false	"vacation period id"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationBalance}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/me/vacation-balance [get]
func (c *balanceApiController) current(ctx *fiber.Ctx) error {
	actor := c.Actor(ctx)
	periodID := ctx.Query("period_id")
	if periodID != "" {
		resp, err := balancehandler.Instance.ForPeriod(actor, periodID)
		if err != nil {
			return c.SendError(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
	}
	resp, err := balancehandler.Instance.Current(actor)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Balances across all periods
// @Tags Vacation balance
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacationapimodels.VacationBalance}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/me/vacation-balances [get]
func (c *balanceApiController) allPeriods(ctx *fiber.Ctx) error {
	resp, err := balancehandler.Instance.AllPeriods(c.Actor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
