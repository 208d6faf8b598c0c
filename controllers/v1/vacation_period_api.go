package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	vacationapimodels "vacation-planner-backend/models/api/vacation"

	allocationhandler "vacation-planner-backend/lib/vacation/allocation"
	periodhandler "vacation-planner-backend/lib/vacation/period"
)

type vacationPeriodApiController struct {
	controllers.BaseAPIController
}

func InitVacationPeriodApiRouters(app *fiber.App) {
	controller := vacationPeriodApiController{}
	app.Route("vacation-periods", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
		router.Get(":id/allocations", controller.listAllocations)
	})
}

// @Summary List vacation periods
// @Tags Vacation periods
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacationapimodels.VacationPeriod}
// @router /api/v1/vacation-periods [get]
func (c *vacationPeriodApiController) list(ctx *fiber.Ctx) error {
	resp, err := periodhandler.Instance.List(c.Actor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a vacation period
// @Tags Vacation periods
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"period id"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationPeriod}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-periods/{id} [get]
func (c *vacationPeriodApiController) get(ctx *fiber.Ctx) error {
	resp, err := periodhandler.Instance.GetByID(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a vacation period
// @Tags Vacation periods
// @Description Periods of one company must not overlap
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	vacationapimodels.CreateVacationPeriod	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationPeriod}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/vacation-periods [post]
func (c *vacationPeriodApiController) create(ctx *fiber.Ctx) error {
	var payload vacationapimodels.CreateVacationPeriod
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := periodhandler.Instance.Create(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a vacation period
// @Tags Vacation periods
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"period id"
// @Param	body	body	vacationapimodels.UpdateVacationPeriod	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationPeriod}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/vacation-periods/{id} [put]
func (c *vacationPeriodApiController) update(ctx *fiber.Ctx) error {
	var payload vacationapimodels.UpdateVacationPeriod
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := periodhandler.Instance.Update(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a vacation period
// @Tags Vacation periods
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"period id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-periods/{id} [delete]
func (c *vacationPeriodApiController) delete(ctx *fiber.Ctx) error {
	if err := periodhandler.Instance.Delete(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List allocations of a period
// @Tags Vacation allocations
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"period id"
// @Success 200 {object} apimodels.Response{data=[]vacationapimodels.VacationAllocation}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-periods/{id}/allocations [get]
func (c *vacationPeriodApiController) listAllocations(ctx *fiber.Ctx) error {
	resp, err := allocationhandler.Instance.ListByPeriod(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
