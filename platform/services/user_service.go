package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories"
)

type UserService struct {
	userRepo     repositories.UserRepository
	progressRepo repositories.SystemProgressRepository
	missions     *MissionService
	tokens       *TokenManager
	bcryptCost   int
	now          func() time.Time
}

func NewUserService(userRepo repositories.UserRepository, progressRepo repositories.SystemProgressRepository, missions *MissionService, tokens *TokenManager, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		missions:     missions,
		tokens:       tokens,
		bcryptCost:   bcryptCost,
		now:          time.Now,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	ProfileType models.ProfileType
}

// Register creates an account and bootstraps its gamification state: a
// progress row per anatomy system and an enrollment into every mission.
// The role is derived from the profile type, never supplied by the caller.
func (us *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: a valid email is required", ErrInvalidArgument)
	}
	if len(input.Password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidArgument)
	}
	if input.DisplayName == "" {
		return nil, "", fmt.Errorf("%w: display name is required", ErrInvalidArgument)
	}
	if !input.ProfileType.Valid() {
		return nil, "", fmt.Errorf("%w: unknown profile type %q", ErrInvalidArgument, input.ProfileType)
	}

	if _, err := us.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("%w: email already registered", ErrAlreadyExists)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), us.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		HashedPassword: string(hashed),
		DisplayName:    input.DisplayName,
		ProfileType:    input.ProfileType,
		Role:           input.ProfileType.DefaultRole(),
		Energy:         5,
		EloRating:      1200,
	}
	if err := us.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := us.progressRepo.EnsureForUser(ctx, user.ID); err != nil {
		slog.Error("Failed to seed system progress",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err))
	}
	if err := us.missions.SeedDefaults(ctx, user.ID); err != nil {
		slog.Error("Failed to seed missions",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err))
	}

	token, err := us.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	slog.Info("User registered",
		slog.Int64("user_id", user.ID),
		slog.String("profile_type", string(user.ProfileType)),
		slog.String("role", string(user.Role)))
	return user, token, nil
}

// Login verifies credentials and issues an access token. A wrong email
// and a wrong password produce the same error.
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := us.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, "", ErrUnauthorized
	}

	token, err := us.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (us *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := us.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

type ProfileUpdate struct {
	DisplayName *string
	AvatarURL   *string
	Preferences map[string]any
}

func (us *UserService) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*models.User, error) {
	user, err := us.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		if *update.DisplayName == "" {
			return nil, fmt.Errorf("%w: display name cannot be empty", ErrInvalidArgument)
		}
		user.DisplayName = *update.DisplayName
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Preferences != nil {
		user.Preferences = update.Preferences
	}

	if err := us.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// SystemProgress returns the user's per-system completion rows.
func (us *UserService) SystemProgress(ctx context.Context, userID int64) ([]*models.SystemProgress, error) {
	if err := us.progressRepo.EnsureForUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure system progress: %w", err)
	}
	return us.progressRepo.GetForUser(ctx, userID)
}

// RecordSystemActivity shifts the completion rate of one anatomy system
// and stamps the interaction time.
func (us *UserService) RecordSystemActivity(ctx context.Context, userID int64, system models.AnatomySystem, delta float64) (*models.SystemProgress, error) {
	if !system.Valid() {
		return nil, fmt.Errorf("%w: unknown system %q", ErrInvalidArgument, system)
	}
	progress, err := us.progressRepo.Get(ctx, userID, system)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if err := us.progressRepo.EnsureForUser(ctx, userID); err != nil {
				return nil, fmt.Errorf("failed to ensure system progress: %w", err)
			}
			progress, err = us.progressRepo.Get(ctx, userID, system)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load system progress: %w", err)
		}
	}

	progress.ApplyDelta(delta, us.now())
	if err := us.progressRepo.Update(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to update system progress: %w", err)
	}
	return progress, nil
}
