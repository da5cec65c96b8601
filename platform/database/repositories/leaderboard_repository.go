package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"github.com/anatomypro/backend/platform/database/models"
)

type LeaderboardRepository interface {
	Create(ctx context.Context, snapshot *models.LeaderboardSnapshot) error
	GetLatest(ctx context.Context, scope models.LeaderboardScope, referenceID *int64) (*models.LeaderboardSnapshot, error)
	GetByID(ctx context.Context, id int64) (*models.LeaderboardSnapshot, error)
	Prune(ctx context.Context, scope models.LeaderboardScope, referenceID *int64, keep int) (int64, error)
}

type leaderboardRepository struct {
	db *bun.DB
}

func NewLeaderboardRepository(db *bun.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Create(ctx context.Context, snapshot *models.LeaderboardSnapshot) error {
	snapshot.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(snapshot).Exec(ctx)
	return err
}

func scopeWhere(q *bun.SelectQuery, scope models.LeaderboardScope, referenceID *int64) *bun.SelectQuery {
	q = q.Where("scope = ?", scope)
	if referenceID != nil {
		q = q.Where("reference_id = ?", *referenceID)
	} else {
		q = q.Where("reference_id IS NULL")
	}
	return q
}

func (r *leaderboardRepository) GetLatest(ctx context.Context, scope models.LeaderboardScope, referenceID *int64) (*models.LeaderboardSnapshot, error) {
	snapshot := new(models.LeaderboardSnapshot)
	q := r.db.NewSelect().Model(snapshot)
	q = scopeWhere(q, scope, referenceID)
	err := q.Order("generated_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *leaderboardRepository) GetByID(ctx context.Context, id int64) (*models.LeaderboardSnapshot, error) {
	snapshot := new(models.LeaderboardSnapshot)
	err := r.db.NewSelect().
		Model(snapshot).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Prune deletes all but the newest keep snapshots for a scope.
func (r *leaderboardRepository) Prune(ctx context.Context, scope models.LeaderboardScope, referenceID *int64, keep int) (int64, error) {
	sub := r.db.NewSelect().
		Model((*models.LeaderboardSnapshot)(nil)).
		Column("id")
	sub = scopeWhere(sub, scope, referenceID)
	sub = sub.Order("generated_at DESC").Offset(keep)

	res, err := r.db.NewDelete().
		Model((*models.LeaderboardSnapshot)(nil)).
		Where("id IN (?)", sub).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return affected, nil
}
