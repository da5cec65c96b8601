package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatomypro/backend/platform/cache"
	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories"
)

const (
	// DefaultLeaderboardLimit matches the ranking size shown by clients.
	DefaultLeaderboardLimit = 20
	// MaxLeaderboardLimit caps a caller supplied limit.
	MaxLeaderboardLimit = 100
	// defaultSnapshotRetention is how many snapshots per scope survive a
	// build before pruning.
	defaultSnapshotRetention = 10
)

type LeaderboardService struct {
	snapshotRepo repositories.LeaderboardRepository
	userRepo     repositories.UserRepository
	cache        *cache.Cache
	cacheTTL     time.Duration
	retention    int
	emitter      EventEmitter
	now          func() time.Time
}

func NewLeaderboardService(snapshotRepo repositories.LeaderboardRepository, userRepo repositories.UserRepository, c *cache.Cache, cacheTTL time.Duration, retention int, emitter EventEmitter) *LeaderboardService {
	if retention <= 0 {
		retention = defaultSnapshotRetention
	}
	return &LeaderboardService{
		snapshotRepo: snapshotRepo,
		userRepo:     userRepo,
		cache:        c,
		cacheTTL:     cacheTTL,
		retention:    retention,
		emitter:      emitter,
		now:          time.Now,
	}
}

func cacheKey(scope models.LeaderboardScope, referenceID *int64) string {
	if referenceID != nil {
		return fmt.Sprintf("leaderboard:%s:%d", scope, *referenceID)
	}
	return fmt.Sprintf("leaderboard:%s", scope)
}

func validateScope(scope models.LeaderboardScope, referenceID *int64) error {
	if !scope.Valid() {
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidArgument, scope)
	}
	if scope.Scoped() && referenceID == nil {
		return fmt.Errorf("%w: scope %q requires a reference id", ErrInvalidArgument, scope)
	}
	if !scope.Scoped() && referenceID != nil {
		return fmt.Errorf("%w: scope %q takes no reference id", ErrInvalidArgument, scope)
	}
	return nil
}

// Latest returns the newest snapshot for a scope, checking the cache
// before the database. When no snapshot exists yet one is built on the
// spot so a fresh deployment never serves an empty board.
func (ls *LeaderboardService) Latest(ctx context.Context, scope models.LeaderboardScope, referenceID *int64) (*models.LeaderboardSnapshot, error) {
	if err := validateScope(scope, referenceID); err != nil {
		return nil, err
	}

	key := cacheKey(scope, referenceID)
	var cached models.LeaderboardSnapshot
	if hit, err := ls.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	snapshot, err := ls.snapshotRepo.GetLatest(ctx, scope, referenceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ls.Build(ctx, scope, referenceID, DefaultLeaderboardLimit)
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err := ls.cache.SetJSON(ctx, key, snapshot, ls.cacheTTL); err != nil {
		slog.Warn("Failed to cache leaderboard snapshot",
			slog.String("key", key),
			slog.Any("error", err))
	}
	return snapshot, nil
}

// Build computes a fresh ranking, persists it as an immutable snapshot,
// prunes old snapshots past the retention window, and primes the cache.
// Users are ordered by XP descending with id ascending as the tie break,
// so equal scores rank deterministically and ranks stay dense (1, 2, 3).
func (ls *LeaderboardService) Build(ctx context.Context, scope models.LeaderboardScope, referenceID *int64, limit int) (*models.LeaderboardSnapshot, error) {
	if err := validateScope(scope, referenceID); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidArgument)
	}
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return nil, fmt.Errorf("%w: limit exceeds %d", ErrInvalidArgument, MaxLeaderboardLimit)
	}

	var (
		users []*models.User
		err   error
	)
	switch scope {
	case models.ScopeOrganization:
		users, err = ls.userRepo.GetTopByXPInOrganization(ctx, *referenceID, limit)
	case models.ScopeClassroom:
		users, err = ls.userRepo.GetTopByXPInClassroom(ctx, *referenceID, limit)
	default:
		// Friends ranking falls back to the global population until a
		// social graph exists.
		users, err = ls.userRepo.GetTopByXP(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rank users: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, models.LeaderboardEntry{
			UserID:      user.ID,
			DisplayName: user.DisplayName,
			XP:          user.XP,
			Streak:      user.Streak,
			Rank:        i + 1,
			Avatar:      user.AvatarURL,
		})
	}

	snapshot := &models.LeaderboardSnapshot{
		Scope:       scope,
		ReferenceID: referenceID,
		GeneratedAt: ls.now().UTC(),
		Entries:     entries,
	}
	if err := ls.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	if pruned, err := ls.snapshotRepo.Prune(ctx, scope, referenceID, ls.retention); err != nil {
		slog.Warn("Failed to prune old snapshots",
			slog.String("scope", string(scope)),
			slog.Any("error", err))
	} else if pruned > 0 {
		slog.Debug("Pruned snapshots",
			slog.String("scope", string(scope)),
			slog.Int64("pruned", pruned))
	}

	key := cacheKey(scope, referenceID)
	if err := ls.cache.SetJSON(ctx, key, snapshot, ls.cacheTTL); err != nil {
		slog.Warn("Failed to cache leaderboard snapshot",
			slog.String("key", key),
			slog.Any("error", err))
	}

	if ls.emitter != nil {
		ls.emitter.Emit(ctx, models.EventLeaderboardBuilt, map[string]any{
			"scope":       scope,
			"snapshot_id": snapshot.ID,
			"entries":     len(entries),
		})
	}

	slog.Info("Leaderboard snapshot built",
		slog.String("scope", string(scope)),
		slog.Int64("snapshot_id", snapshot.ID),
		slog.Int("entries", len(entries)))

	return snapshot, nil
}

// RunRefresher rebuilds the global snapshot on a fixed interval until the
// context is cancelled. Scoped boards refresh lazily on read instead; the
// global board is the one every client shows on its home screen.
func (ls *LeaderboardService) RunRefresher(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := ls.Build(ctx, models.ScopeGlobal, nil, DefaultLeaderboardLimit); err != nil {
				slog.Error("Scheduled leaderboard rebuild failed",
					slog.Any("error", err))
			}
		}
	}
}
