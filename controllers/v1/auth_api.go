package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"vacation-planner-backend/controllers"
	authhandler "vacation-planner-backend/lib/auth"
	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/middleware"
	apimodels "vacation-planner-backend/models/api"
	authapimodels "vacation-planner-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Post("set-password", controller.setPassword)
		router.Post("password-recovery", controller.passwordRecovery)
		router.Post("password-reset", controller.passwordReset)
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", controller.me)
		router.Post("logout", controller.logout)
	})
}

// @Summary Log in
// @Tags Authentication
// @Description Exchange email and password for an access/refresh token pair
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(apperrors.Message(err)))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Refresh the token pair
// @Tags Authentication
// @Description Rotate the refresh token and issue a new access token
// @Param	body	body	authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.RefreshToken(payload.RefreshToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(apperrors.Message(err)))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Set password from an invite
// @Tags Authentication
// @Description Activate an invited account by setting its password
// @Param	body	body	authapimodels.SetPasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.User}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/set-password [post]
func (c *authApiController) setPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.SetPasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, err := authhandler.Instance.SetPassword(payload.Token, payload.Password)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary Request a password reset
// @Tags Authentication
// @Description Send reset instructions; always succeeds to avoid leaking which emails exist
// @Param	body	body	authapimodels.PasswordRecovery	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/password-recovery [post]
func (c *authApiController) passwordRecovery(ctx *fiber.Ctx) error {
	var payload authapimodels.PasswordRecovery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.PasswordResetRequest(payload.Email); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Confirm a password reset
// @Tags Authentication
// @Description Set a new password using the emailed reset code
// @Param	body	body	authapimodels.PasswordResetRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/password-reset [post]
func (c *authApiController) passwordReset(ctx *fiber.Ctx) error {
	var payload authapimodels.PasswordResetRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.PasswordResetConfirm(payload.ResetCode, payload.NewPassword); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Current user
// @Tags Authentication
// @Description Return the authenticated user's profile
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.User}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Log out
// @Tags Authentication
// @Description Revoke all refresh tokens of the current user
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	if err := authhandler.Instance.Logout(middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
