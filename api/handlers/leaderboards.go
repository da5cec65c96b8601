package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/database/models"
)

func scopeFromQuery(c *fiber.Ctx) (models.LeaderboardScope, *int64, error) {
	scope := models.LeaderboardScope(c.Query("scope", string(models.ScopeGlobal)))
	var referenceID *int64
	if ref := c.Query("reference_id"); ref != "" {
		id, err := parseInt64(ref)
		if err != nil {
			return "", nil, err
		}
		referenceID = &id
	}
	return scope, referenceID, nil
}

// Leaderboard returns the latest snapshot for a scope.
func Leaderboard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, referenceID, err := scopeFromQuery(c)
		if err != nil {
			return utils.SendBadRequest(c, "invalid reference id", nil)
		}

		snapshot, err := webApp.Leaderboards.Latest(c.Context(), scope, referenceID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, snapshot, "")
	}
}

// LeaderboardBuild forces a fresh snapshot. Staff only.
func LeaderboardBuild(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.BuildLeaderboardRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}
		if req.Scope == "" {
			req.Scope = string(models.ScopeGlobal)
		}

		snapshot, err := webApp.Leaderboards.Build(c.Context(), models.LeaderboardScope(req.Scope), req.ReferenceID, req.Limit)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, snapshot, "snapshot built")
	}
}

// DashboardView assembles the home screen aggregate for the caller.
func DashboardView(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		dashboard, err := webApp.Dashboards.Get(c.Context(), userID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, dashboard, "")
	}
}
