package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/anatomypro/backend/platform/database/models"
)

type MissionRepository interface {
	Create(ctx context.Context, mission *models.Mission) error
	GetByID(ctx context.Context, id int64) (*models.Mission, error)
	GetByTitle(ctx context.Context, title string) (*models.Mission, error)
	GetAll(ctx context.Context) ([]*models.Mission, error)
	GetProgressForUser(ctx context.Context, userID int64) ([]*models.MissionProgress, error)
	GetProgress(ctx context.Context, userID, missionID int64) (*models.MissionProgress, error)
	CreateProgress(ctx context.Context, progress *models.MissionProgress) error
	UpdateProgress(ctx context.Context, progress *models.MissionProgress) error
	SaveProgressBatch(ctx context.Context, progresses []*models.MissionProgress) error
}

type missionRepository struct {
	db *bun.DB
}

func NewMissionRepository(db *bun.DB) MissionRepository {
	return &missionRepository{db: db}
}

func (r *missionRepository) Create(ctx context.Context, mission *models.Mission) error {
	mission.CreatedAt = time.Now()
	mission.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(mission).Exec(ctx)
	return err
}

func (r *missionRepository) GetByID(ctx context.Context, id int64) (*models.Mission, error) {
	mission := new(models.Mission)
	err := r.db.NewSelect().
		Model(mission).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return mission, nil
}

func (r *missionRepository) GetByTitle(ctx context.Context, title string) (*models.Mission, error) {
	mission := new(models.Mission)
	err := r.db.NewSelect().
		Model(mission).
		Where("title = ?", title).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn("Mission not found",
				slog.String("type", "db"),
				slog.String("operation", "GetByTitle"),
				slog.String("title", title))
		}
		return nil, err
	}
	return mission, nil
}

func (r *missionRepository) GetAll(ctx context.Context) ([]*models.Mission, error) {
	var missions []*models.Mission
	err := r.db.NewSelect().
		Model(&missions).
		Order("id ASC").
		Scan(ctx)
	return missions, err
}

func (r *missionRepository) GetProgressForUser(ctx context.Context, userID int64) ([]*models.MissionProgress, error) {
	var progresses []*models.MissionProgress
	err := r.db.NewSelect().
		Model(&progresses).
		Relation("Mission").
		Where("mp.user_id = ?", userID).
		OrderExpr("mission.title ASC").
		Scan(ctx)
	return progresses, err
}

func (r *missionRepository) GetProgress(ctx context.Context, userID, missionID int64) (*models.MissionProgress, error) {
	progress := new(models.MissionProgress)
	err := r.db.NewSelect().
		Model(progress).
		Relation("Mission").
		Where("mp.user_id = ? AND mp.mission_id = ?", userID, missionID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *missionRepository) CreateProgress(ctx context.Context, progress *models.MissionProgress) error {
	progress.CreatedAt = time.Now()
	progress.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(progress).
		On("CONFLICT (user_id, mission_id) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *missionRepository) UpdateProgress(ctx context.Context, progress *models.MissionProgress) error {
	progress.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(progress).
		WherePK().
		Exec(ctx)
	return err
}

// SaveProgressBatch persists a set of rows in one transaction so a
// reconcile pass does not leave half the windows reset.
func (r *missionRepository) SaveProgressBatch(ctx context.Context, progresses []*models.MissionProgress) error {
	if len(progresses) == 0 {
		return nil
	}
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()
		for _, p := range progresses {
			p.UpdatedAt = now
			if _, err := tx.NewUpdate().Model(p).WherePK().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
