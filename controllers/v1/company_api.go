package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	companyhandler "vacation-planner-backend/lib/company"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	companyapimodels "vacation-planner-backend/models/api/company"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.get)
		router.Post("", middleware.AdminRequired(), controller.create)
	})
}

// @Summary Create company
// @Tags Company
// @Param   Authorization	header	string		true	"Authorization token"
// @Param   payload			body	companyapimodels.CreateCompany	true	"company"
// @Success 200 {object} apimodels.Response{data=companyapimodels.Company}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/company [post]
func (c *companyApiController) create(ctx *fiber.Ctx) error {
	var payload companyapimodels.CreateCompany
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := companyhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current company
// @Tags Company
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.Company}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/company [get]
func (c *companyApiController) get(ctx *fiber.Ctx) error {
	resp, err := companyhandler.Instance.Get(c.Actor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
