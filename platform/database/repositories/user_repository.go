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

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	AddXP(ctx context.Context, id int64, amount int64) error
	UpdateStreak(ctx context.Context, id int64, streak int) error
	GetTopByXP(ctx context.Context, limit int) ([]*models.User, error)
	GetTopByXPInOrganization(ctx context.Context, orgID int64, limit int) ([]*models.User, error)
	GetTopByXPInClassroom(ctx context.Context, classroomID int64, limit int) ([]*models.User, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn("User not found",
				slog.String("type", "db"),
				slog.String("operation", "GetByID"),
				slog.Int64("user_id", id))
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("lower(email) = lower(?)", email).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*models.User)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *userRepository) AddXP(ctx context.Context, id int64, amount int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("xp = xp + ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *userRepository) UpdateStreak(ctx context.Context, id int64, streak int) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("streak = ?", streak).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *userRepository) GetTopByXP(ctx context.Context, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		OrderExpr("xp DESC, id ASC").
		Limit(limit).
		Scan(ctx)
	return users, err
}

func (r *userRepository) GetTopByXPInOrganization(ctx context.Context, orgID int64, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Where("organization_id = ?", orgID).
		OrderExpr("xp DESC, id ASC").
		Limit(limit).
		Scan(ctx)
	return users, err
}

func (r *userRepository) GetTopByXPInClassroom(ctx context.Context, classroomID int64, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Join("JOIN classroom_memberships AS cm ON cm.user_id = u.id").
		Where("cm.classroom_id = ?", classroomID).
		OrderExpr("u.xp DESC, u.id ASC").
		Limit(limit).
		Scan(ctx)
	return users, err
}
