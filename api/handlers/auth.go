package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/services"
)

// Register creates an account and returns it with a fresh token.
func Register(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		user, token, err := webApp.Users.Register(c.Context(), services.RegisterInput{
			Email:       req.Email,
			Password:    req.Password,
			DisplayName: req.DisplayName,
			ProfileType: models.ProfileType(req.ProfileType),
		})
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendCreated(c, fiber.Map{
			"user":  user,
			"token": token,
		}, "account created")
	}
}

// Login exchanges credentials for a token.
func Login(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		user, token, err := webApp.Users.Login(c.Context(), req.Email, req.Password)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{
			"user":  user,
			"token": token,
		}, "logged in")
	}
}
