package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"github.com/anatomypro/backend/platform/database/models"
)

type WebhookRepository interface {
	Create(ctx context.Context, sub *models.WebhookSubscription) error
	GetByID(ctx context.Context, id int64) (*models.WebhookSubscription, error)
	GetActiveByEvent(ctx context.Context, event string) ([]*models.WebhookSubscription, error)
	GetAll(ctx context.Context) ([]*models.WebhookSubscription, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

type webhookRepository struct {
	db *bun.DB
}

func NewWebhookRepository(db *bun.DB) WebhookRepository {
	return &webhookRepository{db: db}
}

func (r *webhookRepository) Create(ctx context.Context, sub *models.WebhookSubscription) error {
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(sub).Exec(ctx)
	return err
}

func (r *webhookRepository) GetByID(ctx context.Context, id int64) (*models.WebhookSubscription, error) {
	sub := new(models.WebhookSubscription)
	err := r.db.NewSelect().
		Model(sub).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *webhookRepository) GetActiveByEvent(ctx context.Context, event string) ([]*models.WebhookSubscription, error) {
	var subs []*models.WebhookSubscription
	err := r.db.NewSelect().
		Model(&subs).
		Where("event = ? AND is_active = true", event).
		Order("id ASC").
		Scan(ctx)
	return subs, err
}

func (r *webhookRepository) GetAll(ctx context.Context) ([]*models.WebhookSubscription, error) {
	var subs []*models.WebhookSubscription
	err := r.db.NewSelect().
		Model(&subs).
		Order("id ASC").
		Scan(ctx)
	return subs, err
}

func (r *webhookRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.NewUpdate().
		Model((*models.WebhookSubscription)(nil)).
		Set("is_active = ?", active).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *webhookRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*models.WebhookSubscription)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
