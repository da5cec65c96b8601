package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories"
)

// EventEmitter decouples mission completion from webhook delivery. The
// production implementation is *WebhookService.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data map[string]any)
}

const missionCatalogKey = "catalog"

type MissionService struct {
	missionRepo repositories.MissionRepository
	userRepo    repositories.UserRepository
	emitter     EventEmitter
	catalog     *lru.Cache
	now         func() time.Time
}

func NewMissionService(missionRepo repositories.MissionRepository, userRepo repositories.UserRepository, emitter EventEmitter) *MissionService {
	catalog, _ := lru.New(8)
	return &MissionService{
		missionRepo: missionRepo,
		userRepo:    userRepo,
		emitter:     emitter,
		catalog:     catalog,
		now:         time.Now,
	}
}

// Catalog returns every mission definition, served from an in-process
// cache since definitions change far less often than they are read.
func (ms *MissionService) Catalog(ctx context.Context) ([]*models.Mission, error) {
	if cached, ok := ms.catalog.Get(missionCatalogKey); ok {
		return cached.([]*models.Mission), nil
	}
	missions, err := ms.missionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission catalog: %w", err)
	}
	ms.catalog.Add(missionCatalogKey, missions)
	return missions, nil
}

// CreateMission adds a definition to the catalog and invalidates the
// cached copy.
func (ms *MissionService) CreateMission(ctx context.Context, mission *models.Mission) error {
	if mission.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if mission.Target < 1 {
		return fmt.Errorf("%w: target must be at least 1", ErrInvalidArgument)
	}
	if !mission.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidArgument, mission.Frequency)
	}
	if err := ms.missionRepo.Create(ctx, mission); err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}
	ms.catalog.Remove(missionCatalogKey)
	return nil
}

// SeedDefaults enrolls a user into every mission in the catalog, creating
// pending progress rows with a fresh cycle window. Existing rows are left
// untouched.
func (ms *MissionService) SeedDefaults(ctx context.Context, userID int64) error {
	missions, err := ms.Catalog(ctx)
	if err != nil {
		return err
	}

	now := ms.now()
	for _, mission := range missions {
		expires := now.Add(mission.Frequency.Window())
		progress := &models.MissionProgress{
			MissionID: mission.ID,
			UserID:    userID,
			Progress:  0,
			Status:    models.MissionStatusPending,
			ExpiresAt: &expires,
		}
		if err := ms.missionRepo.CreateProgress(ctx, progress); err != nil {
			return fmt.Errorf("failed to seed mission %q: %w", mission.Title, err)
		}
	}

	slog.Debug("Seeded missions for user",
		slog.Int64("user_id", userID),
		slog.Int("missions", len(missions)))
	return nil
}

// ActiveMissions returns the user's mission rows after reconciling any
// whose cycle window has lapsed. A caller always sees fresh windows; the
// reset happens on read, not on a background schedule.
func (ms *MissionService) ActiveMissions(ctx context.Context, userID int64) ([]*models.MissionProgress, error) {
	rows, err := ms.missionRepo.GetProgressForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission progress: %w", err)
	}

	if len(rows) == 0 {
		if err := ms.SeedDefaults(ctx, userID); err != nil {
			return nil, err
		}
		rows, err = ms.missionRepo.GetProgressForUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load mission progress: %w", err)
		}
	}

	now := ms.now()
	var dirty []*models.MissionProgress
	for _, row := range rows {
		if row.Reconcile(now) {
			dirty = append(dirty, row)
		}
	}
	if len(dirty) > 0 {
		if err := ms.missionRepo.SaveProgressBatch(ctx, dirty); err != nil {
			return nil, fmt.Errorf("failed to persist mission resets: %w", err)
		}
		slog.Debug("Reset expired missions",
			slog.Int64("user_id", userID),
			slog.Int("reset_count", len(dirty)))
	}

	return rows, nil
}

// IncrementProgress moves a mission row by increment, reconciling a stale
// window first. Crossing the target completes the mission, awards its XP
// once, and emits a mission.completed event.
func (ms *MissionService) IncrementProgress(ctx context.Context, userID, missionID int64, increment int) (*models.MissionProgress, error) {
	row, err := ms.missionRepo.GetProgress(ctx, userID, missionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load mission progress: %w", err)
	}

	now := ms.now()
	row.Reconcile(now)

	wasCompleted := row.Status == models.MissionStatusCompleted
	row.Apply(increment)

	if err := ms.missionRepo.UpdateProgress(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to update mission progress: %w", err)
	}

	if !wasCompleted && row.Status == models.MissionStatusCompleted && row.Mission != nil {
		if err := ms.userRepo.AddXP(ctx, userID, int64(row.Mission.XPReward)); err != nil {
			return nil, fmt.Errorf("failed to award mission xp: %w", err)
		}
		slog.Info("Mission completed",
			slog.Int64("user_id", userID),
			slog.Int64("mission_id", missionID),
			slog.String("title", row.Mission.Title),
			slog.Int("xp_reward", row.Mission.XPReward))

		if ms.emitter != nil {
			ms.emitter.Emit(ctx, models.EventMissionCompleted, map[string]any{
				"user_id":    userID,
				"mission_id": missionID,
				"title":      row.Mission.Title,
				"xp_reward":  row.Mission.XPReward,
			})
		}
	}

	return row, nil
}

// IncrementByTitle is a convenience for internal callers that track
// missions by their stable catalog title rather than id. Unknown titles
// and users not enrolled are logged and ignored.
func (ms *MissionService) IncrementByTitle(ctx context.Context, userID int64, title string, increment int) {
	mission, err := ms.missionRepo.GetByTitle(ctx, title)
	if err != nil {
		return
	}
	if _, err := ms.IncrementProgress(ctx, userID, mission.ID, increment); err != nil && !errors.Is(err, ErrNotFound) {
		slog.Warn("Failed to advance mission",
			slog.Int64("user_id", userID),
			slog.String("title", title),
			slog.Any("error", err))
	}
}
