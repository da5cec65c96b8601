package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/cache"
	"github.com/anatomypro/backend/platform/database"
	"github.com/anatomypro/backend/platform/services"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	DB           *database.DB
	Cache        *cache.Cache
	Repos        *webmodels.Repositories
	Users        *services.UserService
	Missions     *services.MissionService
	Leaderboards *services.LeaderboardService
	Classrooms   *services.ClassroomService
	Campaigns    *services.CampaignService
	Quizzes      *services.QuizService
	Webhooks     *services.WebhookService
	Dashboards   *services.DashboardService
	Avatars      *services.AvatarService
	Version      string
	Commit       string
}

// parseInt64 is a utility function to parse int64 from string
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// HealthCheck reports liveness of the server and its dependencies.
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		checks := fiber.Map{"database": "ok", "cache": "ok"}
		healthy := true

		if err := webApp.DB.Ping(c.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if err := webApp.Cache.Ping(c.Context()); err != nil {
			checks["cache"] = err.Error()
		}

		status := fiber.StatusOK
		if !healthy {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":    map[bool]string{true: "healthy", false: "unhealthy"}[healthy],
			"version":   webApp.Version,
			"commit":    webApp.Commit,
			"checks":    checks,
			"timestamp": time.Now(),
		})
	}
}

func currentUserID(c *fiber.Ctx) (int64, bool) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		return 0, false
	}
	return user.ID, true
}
