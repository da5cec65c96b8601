package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/anatomypro/backend/platform/database/models"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id int64) (*models.Campaign, error)
	GetAll(ctx context.Context) ([]*models.Campaign, error)
	CreateLesson(ctx context.Context, lesson *models.CampaignLesson) error
	GetLesson(ctx context.Context, id int64) (*models.CampaignLesson, error)
	GetLessons(ctx context.Context, campaignID int64) ([]*models.CampaignLesson, error)
	GetProgress(ctx context.Context, userID, lessonID int64) (*models.CampaignProgress, error)
	GetProgressForCampaign(ctx context.Context, userID, campaignID int64) ([]*models.CampaignProgress, error)
	UpsertProgress(ctx context.Context, progress *models.CampaignProgress) error
}

type campaignRepository struct {
	db *bun.DB
}

func NewCampaignRepository(db *bun.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(campaign).Exec(ctx)
	return err
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	campaign := new(models.Campaign)
	err := r.db.NewSelect().
		Model(campaign).
		Relation("Lessons", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("position ASC")
		}).
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

func (r *campaignRepository) GetAll(ctx context.Context) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.NewSelect().
		Model(&campaigns).
		Order("id ASC").
		Scan(ctx)
	return campaigns, err
}

func (r *campaignRepository) CreateLesson(ctx context.Context, lesson *models.CampaignLesson) error {
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(lesson).Exec(ctx)
	return err
}

func (r *campaignRepository) GetLesson(ctx context.Context, id int64) (*models.CampaignLesson, error) {
	lesson := new(models.CampaignLesson)
	err := r.db.NewSelect().
		Model(lesson).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (r *campaignRepository) GetLessons(ctx context.Context, campaignID int64) ([]*models.CampaignLesson, error) {
	var lessons []*models.CampaignLesson
	err := r.db.NewSelect().
		Model(&lessons).
		Where("campaign_id = ?", campaignID).
		Order("position ASC").
		Scan(ctx)
	return lessons, err
}

func (r *campaignRepository) GetProgress(ctx context.Context, userID, lessonID int64) (*models.CampaignProgress, error) {
	progress := new(models.CampaignProgress)
	err := r.db.NewSelect().
		Model(progress).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *campaignRepository) GetProgressForCampaign(ctx context.Context, userID, campaignID int64) ([]*models.CampaignProgress, error) {
	var progresses []*models.CampaignProgress
	err := r.db.NewSelect().
		Model(&progresses).
		Join("JOIN campaign_lessons AS cl ON cl.id = cp.lesson_id").
		Where("cp.user_id = ? AND cl.campaign_id = ?", userID, campaignID).
		Order("cl.position ASC").
		Scan(ctx)
	return progresses, err
}

func (r *campaignRepository) UpsertProgress(ctx context.Context, progress *models.CampaignProgress) error {
	now := time.Now()
	if progress.CreatedAt.IsZero() {
		progress.CreatedAt = now
	}
	progress.UpdatedAt = now
	_, err := r.db.NewInsert().
		Model(progress).
		On("CONFLICT (user_id, lesson_id) DO UPDATE").
		Set("status = EXCLUDED.status").
		Set("score = EXCLUDED.score").
		Set("completed_at = EXCLUDED.completed_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}
