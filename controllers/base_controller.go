package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vacation-planner-backend/lib/utils/apperrors"
	"vacation-planner-backend/middleware"
	"vacation-planner-backend/models"
	apimodels "vacation-planner-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

// Actor builds the acting principal from the verified JWT claims.
func (c *BaseAPIController) Actor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		UserID:    middleware.GetUserID(ctx),
		CompanyID: middleware.GetUserCompany(ctx),
		Role:      middleware.GetUserRole(ctx),
		IPAddress: ctx.IP(),
	}
}

// SendError maps domain errors onto HTTP statuses.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	status := apperrors.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		return ctx.Status(status).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(status).JSON(apimodels.NewError(apperrors.Message(err)))
}
