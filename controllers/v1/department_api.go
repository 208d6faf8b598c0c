package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	departmenthandler "vacation-planner-backend/lib/department"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	departmentapimodels "vacation-planner-backend/models/api/department"
)

type departmentApiController struct {
	controllers.BaseAPIController
}

func InitDepartmentApiRouters(app *fiber.App) {
	controller := departmentApiController{}
	app.Route("departments", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Post("", middleware.AdminRequired(), controller.create)
	})
}

// @Summary Create department
// @Tags Departments
// @Param   Authorization	header	string		true	"Authorization token"
// @Param   payload			body	departmentapimodels.CreateDepartment	true	"department"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.Department}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/departments [post]
func (c *departmentApiController) create(ctx *fiber.Ctx) error {
	var payload departmentapimodels.CreateDepartment
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := departmenthandler.Instance.Create(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List departments
// @Tags Departments
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]departmentapimodels.Department}
// @router /api/v1/departments [get]
func (c *departmentApiController) list(ctx *fiber.Ctx) error {
	resp, err := departmenthandler.Instance.List(c.Actor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Department by id
// @Tags Departments
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"department id"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.Department}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/departments/{id} [get]
func (c *departmentApiController) get(ctx *fiber.Ctx) error {
	resp, err := departmenthandler.Instance.GetByID(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
