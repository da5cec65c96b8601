package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/database/models"
)

// MissionCatalog lists every mission definition.
func MissionCatalog(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		missions, err := webApp.Missions.Catalog(c.Context())
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, missions, "")
	}
}

// MissionCreate adds a definition to the catalog.
func MissionCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.CreateMissionRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		mission := &models.Mission{
			Title:       req.Title,
			Description: req.Description,
			XPReward:    req.XPReward,
			Target:      req.Target,
			Frequency:   models.MissionFrequency(req.Frequency),
			Category:    req.Category,
		}
		if mission.Category == "" {
			mission.Category = "general"
		}
		if err := webApp.Missions.CreateMission(c.Context(), mission); err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, mission, "mission created")
	}
}

// ActiveMissions returns the caller's mission rows with fresh windows.
func ActiveMissions(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		missions, err := webApp.Missions.ActiveMissions(c.Context(), userID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, missions, "")
	}
}

// MissionProgress advances one mission for the caller.
func MissionProgress(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		missionID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid mission id", nil)
		}

		var req webmodels.MissionProgressRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}
		if req.Increment == 0 {
			req.Increment = 1
		}

		progress, err := webApp.Missions.IncrementProgress(c.Context(), userID, missionID, req.Increment)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, progress, "progress updated")
	}
}
