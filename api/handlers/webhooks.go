package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
)

// WebhookCreate registers a subscriber. Staff only.
func WebhookCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.CreateWebhookRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		sub, err := webApp.Webhooks.Subscribe(c.Context(), req.TargetURL, req.Secret, req.Event)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, sub, "webhook registered")
	}
}

// WebhookList returns every subscription. Staff only.
func WebhookList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := webApp.Webhooks.List(c.Context())
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, subs, "")
	}
}

// WebhookToggle pauses or resumes a subscription. Staff only.
func WebhookToggle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid webhook id", nil)
		}

		var req struct {
			Active bool `json:"active"`
		}
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		if err := webApp.Webhooks.SetActive(c.Context(), id, req.Active); err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, fiber.Map{"id": id, "active": req.Active}, "webhook updated")
	}
}

// WebhookDelete removes a subscription. Staff only.
func WebhookDelete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid webhook id", nil)
		}
		if err := webApp.Webhooks.Delete(c.Context(), id); err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendNoContent(c)
	}
}
