package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/anatomypro/backend/platform/database/models"
)

type SystemProgressRepository interface {
	EnsureForUser(ctx context.Context, userID int64) error
	GetForUser(ctx context.Context, userID int64) ([]*models.SystemProgress, error)
	Get(ctx context.Context, userID int64, system models.AnatomySystem) (*models.SystemProgress, error)
	Update(ctx context.Context, progress *models.SystemProgress) error
}

type systemProgressRepository struct {
	db *bun.DB
}

func NewSystemProgressRepository(db *bun.DB) SystemProgressRepository {
	return &systemProgressRepository{db: db}
}

// EnsureForUser creates a zeroed progress row for every anatomy system
// the user is missing.
func (r *systemProgressRepository) EnsureForUser(ctx context.Context, userID int64) error {
	now := time.Now()
	rows := make([]*models.SystemProgress, 0, len(models.AllAnatomySystems))
	for _, system := range models.AllAnatomySystems {
		rows = append(rows, &models.SystemProgress{
			UserID:    userID,
			System:    system,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	_, err := r.db.NewInsert().
		Model(&rows).
		On("CONFLICT (user_id, system) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *systemProgressRepository) GetForUser(ctx context.Context, userID int64) ([]*models.SystemProgress, error) {
	var progresses []*models.SystemProgress
	err := r.db.NewSelect().
		Model(&progresses).
		Where("user_id = ?", userID).
		Order("system ASC").
		Scan(ctx)
	return progresses, err
}

func (r *systemProgressRepository) Get(ctx context.Context, userID int64, system models.AnatomySystem) (*models.SystemProgress, error) {
	progress := new(models.SystemProgress)
	err := r.db.NewSelect().
		Model(progress).
		Where("user_id = ? AND system = ?", userID, system).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *systemProgressRepository) Update(ctx context.Context, progress *models.SystemProgress) error {
	progress.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(progress).
		WherePK().
		Exec(ctx)
	return err
}
