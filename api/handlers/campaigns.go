package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/database/models"
)

// CampaignList returns every campaign.
func CampaignList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		campaigns, err := webApp.Campaigns.List(c.Context())
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, campaigns, "")
	}
}

// CampaignDetail returns one campaign with its lessons.
func CampaignDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid campaign id", nil)
		}
		campaign, err := webApp.Campaigns.Get(c.Context(), id)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, campaign, "")
	}
}

// CampaignCreate adds a campaign. Staff only.
func CampaignCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.CreateCampaignRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		campaign := &models.Campaign{
			Title:            req.Title,
			Description:      req.Description,
			AnatomySystem:    req.AnatomySystem,
			RecommendedLevel: req.RecommendedLevel,
		}
		if err := webApp.Campaigns.Create(c.Context(), campaign); err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, campaign, "campaign created")
	}
}

// LessonCreate adds a lesson to a campaign. Staff only.
func LessonCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		campaignID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid campaign id", nil)
		}

		var req webmodels.CreateLessonRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		lesson := &models.CampaignLesson{
			CampaignID:      campaignID,
			Position:        req.Position,
			Title:           req.Title,
			ContentURL:      req.ContentURL,
			DurationMinutes: req.DurationMinutes,
			XPReward:        req.XPReward,
		}
		if err := webApp.Campaigns.AddLesson(c.Context(), lesson); err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, lesson, "lesson created")
	}
}

// CampaignProgress returns the caller's rows for one campaign.
func CampaignProgress(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		campaignID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid campaign id", nil)
		}

		progress, err := webApp.Campaigns.Progress(c.Context(), userID, campaignID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, progress, "")
	}
}

// LessonStart marks a lesson in progress for the caller.
func LessonStart(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		lessonID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid lesson id", nil)
		}

		progress, err := webApp.Campaigns.StartLesson(c.Context(), userID, lessonID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, progress, "lesson started")
	}
}

// LessonComplete finishes a lesson for the caller.
func LessonComplete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		lessonID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid lesson id", nil)
		}

		var req webmodels.CompleteLessonRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		progress, err := webApp.Campaigns.CompleteLesson(c.Context(), userID, lessonID, req.Score)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, progress, "lesson completed")
	}
}
