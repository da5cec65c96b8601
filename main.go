package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"github.com/anatomypro/backend/api/handlers"
	"github.com/anatomypro/backend/api/middleware"
	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/platform"
	"github.com/anatomypro/backend/platform/cache"
	"github.com/anatomypro/backend/platform/database"
	"github.com/anatomypro/backend/platform/database/repositories"
	"github.com/anatomypro/backend/platform/logger"
	"github.com/anatomypro/backend/platform/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := platform.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	customHandler := logger.NewHandler("AnatomyPro-API", cfg.Log.Level, cfg.Log.AddSource)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting AnatomyPro API",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...")
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Database connected successfully")

	redisCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		// Degrades to uncached reads, never refuses to start.
		slog.Warn("Redis unavailable, running without cache",
			slog.String("error", err.Error()))
		redisCache = nil
	}

	repos := webmodels.NewRepositories(
		repositories.NewUserRepository(db.BunDB()),
		repositories.NewMissionRepository(db.BunDB()),
		repositories.NewLeaderboardRepository(db.BunDB()),
		repositories.NewClassroomRepository(db.BunDB()),
		repositories.NewCampaignRepository(db.BunDB()),
		repositories.NewQuizRepository(db.BunDB()),
		repositories.NewSystemProgressRepository(db.BunDB()),
		repositories.NewWebhookRepository(db.BunDB()),
	)

	tokens := services.NewTokenManager(cfg.Auth)
	webhookService := services.NewWebhookService(repos.Webhook)
	missionService := services.NewMissionService(repos.Mission, repos.User, webhookService)
	leaderboardService := services.NewLeaderboardService(
		repos.Leaderboard,
		repos.User,
		redisCache,
		cfg.Leaderboard.CacheTTL(),
		cfg.Leaderboard.Retention,
		webhookService,
	)
	userService := services.NewUserService(repos.User, repos.SystemProgress, missionService, tokens, cfg.Auth.BCryptCost)
	classroomService := services.NewClassroomService(repos.Classroom, repos.User)
	campaignService := services.NewCampaignService(repos.Campaign, repos.User, userService, missionService, webhookService)
	quizService := services.NewQuizService(repos.Quiz, repos.User, userService, missionService)
	dashboardService := services.NewDashboardService(userService, missionService, leaderboardService, redisCache)

	var avatarService *services.AvatarService
	if cfg.Storage.Key != "" {
		avatarService, err = services.NewAvatarService(ctx, cfg.Storage)
		if err != nil {
			slog.Error("Failed to initialize avatar storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "AnatomyPro API",
		ServerHeader: "AnatomyPro",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Server.CORSOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware())

	ratePerMin := cfg.Server.RatePerMin
	if ratePerMin <= 0 {
		ratePerMin = 120
	}
	app.Use(middleware.RateLimit(middleware.NewRateLimiter(ratePerMin, time.Minute)))

	authRatePerMin := cfg.Auth.AuthRatePerMin
	if authRatePerMin <= 0 {
		authRatePerMin = 10
	}
	authLimiter := middleware.NewRateLimiter(authRatePerMin, time.Minute)

	webApp := &handlers.WebApp{
		DB:           db,
		Cache:        redisCache,
		Repos:        repos,
		Users:        userService,
		Missions:     missionService,
		Leaderboards: leaderboardService,
		Classrooms:   classroomService,
		Campaigns:    campaignService,
		Quizzes:      quizService,
		Webhooks:     webhookService,
		Dashboards:   dashboardService,
		Avatars:      avatarService,
		Version:      version,
		Commit:       commit,
	}

	setupRoutes(app, webApp, tokens, repos, authLimiter)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting server", slog.String("address", address))

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return app.Listen(address)
	})
	g.Go(func() error {
		return leaderboardService.RunRefresher(gCtx, cfg.Leaderboard.RefreshInterval())
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		slog.Error("Server stopped", slog.String("error", err.Error()))
	}

	webhookService.Flush()
	db.Close()
	if err := redisCache.Close(); err != nil {
		slog.Warn("Failed to close cache", slog.String("error", err.Error()))
	}
	slog.Info("Server shutdown complete")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp, tokens *services.TokenManager, repos *webmodels.Repositories, authLimiter *middleware.RateLimiter) {
	app.Get("/health", handlers.HealthCheck(webApp))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AnatomyPro API",
			"version": webApp.Version,
			"status":  "running",
		})
	})

	v1 := app.Group("/v1")

	auth := v1.Group("/auth", middleware.RateLimit(authLimiter))
	auth.Post("/register", handlers.Register(webApp))
	auth.Post("/login", handlers.Login(webApp))

	authed := v1.Group("", middleware.AuthRequired(tokens, repos.User))

	users := authed.Group("/users")
	users.Get("/me", handlers.Me(webApp))
	users.Patch("/me", handlers.UpdateMe(webApp))
	users.Post("/me/avatar", handlers.UploadAvatar(webApp))
	users.Get("/me/systems", handlers.SystemProgressList(webApp))
	users.Post("/me/systems", handlers.RecordSystemActivity(webApp))
	users.Get("/:id", handlers.UserDetail(webApp))

	missions := authed.Group("/missions")
	missions.Get("/", handlers.MissionCatalog(webApp))
	missions.Get("/active", handlers.ActiveMissions(webApp))
	missions.Post("/:id/progress", handlers.MissionProgress(webApp))
	missions.Post("/", middleware.StaffRequired(), handlers.MissionCreate(webApp))

	leaderboards := authed.Group("/leaderboards")
	leaderboards.Get("/", handlers.Leaderboard(webApp))
	leaderboards.Post("/build", middleware.StaffRequired(), handlers.LeaderboardBuild(webApp))

	authed.Get("/dashboard", handlers.DashboardView(webApp))

	classrooms := authed.Group("/classrooms")
	classrooms.Get("/", handlers.ClassroomList(webApp))
	classrooms.Post("/", handlers.ClassroomCreate(webApp))
	classrooms.Post("/join", handlers.ClassroomJoin(webApp))
	classrooms.Get("/:id/members", handlers.ClassroomMembers(webApp))
	classrooms.Delete("/:id/membership", handlers.ClassroomLeave(webApp))

	campaigns := authed.Group("/campaigns")
	campaigns.Get("/", handlers.CampaignList(webApp))
	campaigns.Get("/:id", handlers.CampaignDetail(webApp))
	campaigns.Get("/:id/progress", handlers.CampaignProgress(webApp))
	campaigns.Post("/", middleware.StaffRequired(), handlers.CampaignCreate(webApp))
	campaigns.Post("/:id/lessons", middleware.StaffRequired(), handlers.LessonCreate(webApp))

	lessons := authed.Group("/lessons")
	lessons.Post("/:id/start", handlers.LessonStart(webApp))
	lessons.Post("/:id/complete", handlers.LessonComplete(webApp))

	quizzes := authed.Group("/quizzes")
	quizzes.Get("/questions/search", handlers.QuestionSearch(webApp))
	quizzes.Post("/questions", middleware.StaffRequired(), handlers.QuestionCreate(webApp))
	quizzes.Post("/sessions", handlers.QuizStart(webApp))
	quizzes.Post("/sessions/:id/answers", handlers.QuizAnswer(webApp))
	quizzes.Post("/sessions/:id/finish", handlers.QuizFinish(webApp))

	webhooks := authed.Group("/webhooks", middleware.StaffRequired())
	webhooks.Get("/", handlers.WebhookList(webApp))
	webhooks.Post("/", handlers.WebhookCreate(webApp))
	webhooks.Patch("/:id", handlers.WebhookToggle(webApp))
	webhooks.Delete("/:id", handlers.WebhookDelete(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error": fiber.Map{
				"code":    fiber.StatusNotFound,
				"message": "route not found",
			},
		})
	})
}
