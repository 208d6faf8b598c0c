package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	usershandler "vacation-planner-backend/lib/users"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	userapimodels "vacation-planner-backend/models/api/user"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("invite", middleware.AdminRequired(), controller.invite)
		router.Get("", middleware.AdminRequired(), controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Post(":id/reset-password", middleware.AdminRequired(), controller.resetPassword)
		router.Post(":id/deactivate", middleware.AdminRequired(), controller.deactivate)
	})
}

// @Summary Invite a user
// @Tags Users
// @Description Create an inactive account and email an invite link
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	userapimodels.InviteUser	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.InviteResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/invite [post]
func (c *usersApiController) invite(ctx *fiber.Ctx) error {
	var payload userapimodels.InviteUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.Invite(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List company users
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   role			query	string	false	"filter by role"
// @Param   department_id	query	string	false	"filter by department"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.User}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *usersApiController) list(ctx *fiber.Ctx) error {
	filter := userapimodels.UserFilter{
		Role:         ctx.Query("role"),
		DepartmentID: ctx.Query("department_id"),
	}
	resp, err := usershandler.Instance.List(c.Actor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a user
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=userapimodels.User}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *usersApiController) get(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.GetByID(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a user
// @Tags Users
// @Description Users may edit themselves, admins anyone in the company
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"user id"
// @Param	body	body	userapimodels.UpdateUser	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.User}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *usersApiController) update(ctx *fiber.Ctx) error {
	var payload userapimodels.UpdateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.Update(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Deactivate a user
// @Tags Users
// @Description Disable the account and revoke its sessions
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id}/deactivate [post]
func (c *usersApiController) deactivate(ctx *fiber.Ctx) error {
	if err := usershandler.Instance.Deactivate(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reset a user's password
// @Tags Users
// @Description Invalidate the user's password and sessions; the user must complete the password reset flow
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id}/reset-password [post]
func (c *usersApiController) resetPassword(ctx *fiber.Ctx) error {
	if err := usershandler.Instance.ResetPassword(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
