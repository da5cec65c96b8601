package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories"
)

// systemStudyDelta is how much one completed lesson advances the lesson's
// anatomy system completion rate.
const systemStudyDelta = 0.05

type CampaignService struct {
	campaignRepo repositories.CampaignRepository
	userRepo     repositories.UserRepository
	users        *UserService
	missions     *MissionService
	emitter      EventEmitter
	now          func() time.Time
}

func NewCampaignService(campaignRepo repositories.CampaignRepository, userRepo repositories.UserRepository, users *UserService, missions *MissionService, emitter EventEmitter) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		users:        users,
		missions:     missions,
		emitter:      emitter,
		now:          time.Now,
	}
}

func (cs *CampaignService) List(ctx context.Context) ([]*models.Campaign, error) {
	return cs.campaignRepo.GetAll(ctx)
}

func (cs *CampaignService) Get(ctx context.Context, id int64) (*models.Campaign, error) {
	campaign, err := cs.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return campaign, nil
}

func (cs *CampaignService) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if !models.AnatomySystem(campaign.AnatomySystem).Valid() {
		return fmt.Errorf("%w: unknown anatomy system %q", ErrInvalidArgument, campaign.AnatomySystem)
	}
	return cs.campaignRepo.Create(ctx, campaign)
}

func (cs *CampaignService) AddLesson(ctx context.Context, lesson *models.CampaignLesson) error {
	if lesson.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if _, err := cs.Get(ctx, lesson.CampaignID); err != nil {
		return err
	}
	return cs.campaignRepo.CreateLesson(ctx, lesson)
}

// Progress returns the user's rows for one campaign, in lesson order.
func (cs *CampaignService) Progress(ctx context.Context, userID, campaignID int64) ([]*models.CampaignProgress, error) {
	if _, err := cs.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	return cs.campaignRepo.GetProgressForCampaign(ctx, userID, campaignID)
}

// StartLesson marks a lesson as in progress. Starting a completed lesson
// leaves it completed.
func (cs *CampaignService) StartLesson(ctx context.Context, userID, lessonID int64) (*models.CampaignProgress, error) {
	if _, err := cs.lesson(ctx, lessonID); err != nil {
		return nil, err
	}

	existing, err := cs.campaignRepo.GetProgress(ctx, userID, lessonID)
	if err == nil && existing.Status == models.CampaignStatusCompleted {
		return existing, nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load lesson progress: %w", err)
	}

	progress := &models.CampaignProgress{
		UserID:   userID,
		LessonID: lessonID,
		Status:   models.CampaignStatusInProgress,
	}
	if existing != nil {
		progress.ID = existing.ID
		progress.CreatedAt = existing.CreatedAt
	}
	if err := cs.campaignRepo.UpsertProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to start lesson: %w", err)
	}
	return progress, nil
}

// CompleteLesson finishes a lesson: the row is marked completed, the
// lesson's XP is awarded, the campaign's anatomy system advances, the
// study mission ticks, and a lesson.completed event goes out. Completing
// an already completed lesson changes nothing and awards nothing.
func (cs *CampaignService) CompleteLesson(ctx context.Context, userID, lessonID int64, score *float64) (*models.CampaignProgress, error) {
	lesson, err := cs.lesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if score != nil && (*score < 0 || *score > 100) {
		return nil, fmt.Errorf("%w: score must be between 0 and 100", ErrInvalidArgument)
	}

	existing, err := cs.campaignRepo.GetProgress(ctx, userID, lessonID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load lesson progress: %w", err)
	}
	if existing != nil && existing.Status == models.CampaignStatusCompleted {
		return existing, nil
	}

	now := cs.now()
	progress := &models.CampaignProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Status:      models.CampaignStatusCompleted,
		Score:       score,
		CompletedAt: &now,
	}
	if existing != nil {
		progress.ID = existing.ID
		progress.CreatedAt = existing.CreatedAt
	}
	if err := cs.campaignRepo.UpsertProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to complete lesson: %w", err)
	}

	if err := cs.userRepo.AddXP(ctx, userID, int64(lesson.XPReward)); err != nil {
		return nil, fmt.Errorf("failed to award lesson xp: %w", err)
	}

	campaign, err := cs.Get(ctx, lesson.CampaignID)
	if err == nil {
		if _, err := cs.users.RecordSystemActivity(ctx, userID, models.AnatomySystem(campaign.AnatomySystem), systemStudyDelta); err != nil {
			slog.Warn("Failed to advance system progress",
				slog.Int64("user_id", userID),
				slog.String("system", campaign.AnatomySystem),
				slog.Any("error", err))
		}
	}

	cs.missions.IncrementByTitle(ctx, userID, "Estude um Sistema", 1)

	if cs.emitter != nil {
		cs.emitter.Emit(ctx, models.EventLessonCompleted, map[string]any{
			"user_id":   userID,
			"lesson_id": lessonID,
			"xp_reward": lesson.XPReward,
		})
	}

	slog.Info("Lesson completed",
		slog.Int64("user_id", userID),
		slog.Int64("lesson_id", lessonID),
		slog.Int("xp_reward", lesson.XPReward))
	return progress, nil
}

func (cs *CampaignService) lesson(ctx context.Context, lessonID int64) (*models.CampaignLesson, error) {
	lesson, err := cs.campaignRepo.GetLesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load lesson: %w", err)
	}
	return lesson, nil
}
