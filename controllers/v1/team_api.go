package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	teamhandler "vacation-planner-backend/lib/team"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	teamapimodels "vacation-planner-backend/models/api/team"
)

type teamApiController struct {
	controllers.BaseAPIController
}

func InitTeamApiRouters(app *fiber.App) {
	controller := teamApiController{}
	app.Route("teams", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Get(":id/members", controller.listMembers)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
		router.Post(":id/members/:userId", controller.addMember)
		router.Delete(":id/members/:userId", controller.removeMember)
		router.Post(":id/managers/:userId", controller.assignManager)
		router.Delete(":id/managers/:userId", controller.removeManager)
	})
}

// @Summary List teams
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]teamapimodels.Team}
// @router /api/v1/teams [get]
func (c *teamApiController) list(ctx *fiber.Ctx) error {
	resp, err := teamhandler.Instance.List(c.Actor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a team
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Success 200 {object} apimodels.Response{data=teamapimodels.Team}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/teams/{id} [get]
func (c *teamApiController) get(ctx *fiber.Ctx) error {
	resp, err := teamhandler.Instance.GetByID(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List team members
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.User}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/teams/{id}/members [get]
func (c *teamApiController) listMembers(ctx *fiber.Ctx) error {
	resp, err := teamhandler.Instance.ListMembers(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a team
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	teamapimodels.CreateTeam	true	"request body"
// @Success 200 {object} apimodels.Response{data=teamapimodels.Team}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/teams [post]
func (c *teamApiController) create(ctx *fiber.Ctx) error {
	var payload teamapimodels.CreateTeam
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := teamhandler.Instance.Create(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Rename a team
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Param	body	body	teamapimodels.UpdateTeam	true	"request body"
// @Success 200 {object} apimodels.Response{data=teamapimodels.Team}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/teams/{id} [put]
func (c *teamApiController) update(ctx *fiber.Ctx) error {
	var payload teamapimodels.UpdateTeam
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := teamhandler.Instance.Update(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a team
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/teams/{id} [delete]
func (c *teamApiController) delete(ctx *fiber.Ctx) error {
	if err := teamhandler.Instance.Delete(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add a team member
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Param   userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/teams/{id}/members/{userId} [post]
func (c *teamApiController) addMember(ctx *fiber.Ctx) error {
	if err := teamhandler.Instance.AddMember(c.Actor(ctx), ctx.Params("id"), ctx.Params("userId")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove a team member
// @Tags Teams
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Param   userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/teams/{id}/members/{userId} [delete]
func (c *teamApiController) removeMember(ctx *fiber.Ctx) error {
	if err := teamhandler.Instance.RemoveMember(c.Actor(ctx), ctx.Params("id"), ctx.Params("userId")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assign a team manager
// @Tags Teams
// @Description Promotes a plain user to the manager role
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Param   userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/teams/{id}/managers/{userId} [post]
func (c *teamApiController) assignManager(ctx *fiber.Ctx) error {
	if err := teamhandler.Instance.AssignManager(c.Actor(ctx), ctx.Params("id"), ctx.Params("userId")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove a team manager
// @Tags Teams
// @Description Demotes the user back when this was their last managed team
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"team id"
// @Param   userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/teams/{id}/managers/{userId} [delete]
func (c *teamApiController) removeManager(ctx *fiber.Ctx) error {
	if err := teamhandler.Instance.RemoveManager(c.Actor(ctx), ctx.Params("id"), ctx.Params("userId")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
