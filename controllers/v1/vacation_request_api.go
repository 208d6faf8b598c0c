package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	vacationapimodels "vacation-planner-backend/models/api/vacation"

	requesthandler "vacation-planner-backend/lib/vacation/request"
)

type vacationRequestApiController struct {
	controllers.BaseAPIController
}

func InitVacationRequestApiRouters(app *fiber.App) {
	controller := vacationRequestApiController{}
	app.Route("vacation-requests", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get("pending", middleware.ManagerRequired(), controller.listPending)
		router.Get(":id", controller.get)
		router.Delete(":id", controller.cancel)
		router.Post(":id/action", middleware.ManagerRequired(), controller.decide)
		router.Put(":id", middleware.ManagerRequired(), controller.modify)
	})
}

// @Summary Submit a vacation request
// @Tags Vacation requests
// @Description Create a pending vacation request for the current user
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	vacationapimodels.CreateVacationRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationRequest}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacation-requests [post]
func (c *vacationRequestApiController) create(ctx *fiber.Ctx) error {
	var payload vacationapimodels.CreateVacationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requesthandler.Instance.Create(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List own vacation requests
// @Tags Vacation requests
// @Description List the current user's requests, optionally filtered by status and date range
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   status	query	string	false	"request status"
// @Success 200 {object} apimodels.Response{data=[]vacationapimodels.VacationRequest}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacation-requests [get]
func (c *vacationRequestApiController) list(ctx *fiber.Ctx) error {
	filter := vacationapimodels.VacationRequestFilter{
		Status: ctx.Query("status"),
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requesthandler.Instance.ListOwn(c.Actor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List pending requests to decide
// @Tags Vacation requests
// @Description Pending requests of managed teams (all company teams for admins)
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   team_id	query	string	false	"restrict to one team"
// @Success 200 {object} apimodels.Response{data=[]vacationapimodels.VacationRequest}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacation-requests/pending [get]
func (c *vacationRequestApiController) listPending(ctx *fiber.Ctx) error {
	resp, err := requesthandler.Instance.ListPending(c.Actor(ctx), ctx.Query("team_id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a vacation request
// @Tags Vacation requests
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"request id"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationRequest}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-requests/{id} [get]
func (c *vacationRequestApiController) get(ctx *fiber.Ctx) error {
	resp, err := requesthandler.Instance.GetByID(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Cancel an own pending request
// @Tags Vacation requests
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"request id"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationRequest}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-requests/{id} [delete]
func (c *vacationRequestApiController) cancel(ctx *fiber.Ctx) error {
	resp, err := requesthandler.Instance.Cancel(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approve or reject a pending request
// @Tags Vacation requests
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"request id"
// @Param	body	body	vacationapimodels.VacationRequestAction	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationRequest}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-requests/{id}/action [post]
func (c *vacationRequestApiController) decide(ctx *fiber.Ctx) error {
	var payload vacationapimodels.VacationRequestAction
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requesthandler.Instance.Decide(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Modify a vacation request
// @Tags Vacation requests
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"request id"
// @Param	body	body	vacationapimodels.ModifyVacationRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacationapimodels.VacationRequest}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacation-requests/{id} [put]
func (c *vacationRequestApiController) modify(ctx *fiber.Ctx) error {
	var payload vacationapimodels.ModifyVacationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requesthandler.Instance.Modify(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
