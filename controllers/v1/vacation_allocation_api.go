package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	allocationhandler "vacation-planner-backend/lib/vacation/allocation"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	vacationapimodels "vacation-planner-backend/models/api/vacation"
)

type vacationAllocationApiController struct {
	controllers.BaseAPIController
}

func InitVacationAllocationApiRouters(app *fiber.App) {
	controller := vacationAllocationApiController{}
	app.Route("vacation-allocations", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.AdminRequired())
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Create an allocation
// @Tags Vacation allocations
// @Description One allocation per user and period
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	vacationapimodels.CreateVacationAllocation	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationAllocation}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/vacation-allocations [post]
func (c *vacationAllocationApiController) create(ctx *fiber.Ctx) error {
	var payload vacationapimodels.CreateVacationAllocation
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := allocationhandler.Instance.Create(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update an allocation
// @Tags Vacation allocations
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"allocation id"
// @Param	body	body	vacationapimodels.UpdateVacationAllocation	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationAllocation}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-allocations/{id} [put]
func (c *vacationAllocationApiController) update(ctx *fiber.Ctx) error {
	var payload vacationapimodels.UpdateVacationAllocation
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := allocationhandler.Instance.Update(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete an allocation
// @Tags Vacation allocations
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"allocation id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-allocations/{id} [delete]
func (c *vacationAllocationApiController) delete(ctx *fiber.Ctx) error {
	if err := allocationhandler.Instance.Delete(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
