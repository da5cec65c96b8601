package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/anatomypro/backend/platform"
	"github.com/anatomypro/backend/platform/database/models"
	mockrepo "github.com/anatomypro/backend/platform/database/repositories/mock"
)

func newUserService(t *testing.T, ctrl *gomock.Controller) (*UserService, *mockrepo.MockUserRepository, *mockrepo.MockSystemProgressRepository, *mockrepo.MockMissionRepository) {
	t.Helper()
	userRepo := mockrepo.NewMockUserRepository(ctrl)
	progressRepo := mockrepo.NewMockSystemProgressRepository(ctrl)
	missionRepo := mockrepo.NewMockMissionRepository(ctrl)

	missions := NewMissionService(missionRepo, userRepo, &recordingEmitter{})
	missions.now = func() time.Time { return testNow }
	tokens := NewTokenManager(platform.AuthConfig{Secret: "unit-test-secret"})

	us := NewUserService(userRepo, progressRepo, missions, tokens, bcrypt.MinCost)
	us.now = func() time.Time { return testNow }
	return us, userRepo, progressRepo, missionRepo
}

func TestUserService_RegisterMapsProfileTypeToRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	us, userRepo, progressRepo, missionRepo := newUserService(t, ctrl)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "prof@example.com").Return(nil, sql.ErrNoRows)
	userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			u.ID = 7
			return nil
		})
	progressRepo.EXPECT().EnsureForUser(ctx, int64(7)).Return(nil)
	missionRepo.EXPECT().GetAll(ctx).Return([]*models.Mission{
		{ID: 1, Title: "Realize um Sprint", Frequency: models.MissionFrequencyDaily, Target: 1},
	}, nil)
	missionRepo.EXPECT().CreateProgress(ctx, gomock.Any()).Return(nil)

	user, token, err := us.Register(ctx, RegisterInput{
		Email:       "Prof@Example.com",
		Password:    "correct-horse",
		DisplayName: "Dra. Helena",
		ProfileType: models.ProfileTypeProfessor,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != models.UserRoleTeacher {
		t.Errorf("role = %q, want teacher for professor profile", user.Role)
	}
	if user.Email != "prof@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
}

func TestUserService_RegisterRejectsDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	us, userRepo, _, _ := newUserService(t, ctrl)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "taken@example.com").Return(&models.User{ID: 1}, nil)

	_, _, err := us.Register(ctx, RegisterInput{
		Email:       "taken@example.com",
		Password:    "correct-horse",
		DisplayName: "Someone",
		ProfileType: models.ProfileTypeStudent,
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("error = %v, want ErrAlreadyExists", err)
	}
}

func TestUserService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing email", RegisterInput{Password: "correct-horse", DisplayName: "A", ProfileType: models.ProfileTypeStudent}},
		{"short password", RegisterInput{Email: "a@b.com", Password: "short", DisplayName: "A", ProfileType: models.ProfileTypeStudent}},
		{"missing display name", RegisterInput{Email: "a@b.com", Password: "correct-horse", ProfileType: models.ProfileTypeStudent}},
		{"unknown profile type", RegisterInput{Email: "a@b.com", Password: "correct-horse", DisplayName: "A", ProfileType: "alien"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			us, _, _, _ := newUserService(t, ctrl)

			_, _, err := us.Register(context.Background(), tt.input)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	us, userRepo, _, _ := newUserService(t, ctrl)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	userRepo.EXPECT().GetByEmail(ctx, "a@b.com").Return(&models.User{ID: 1, HashedPassword: string(hashed)}, nil)

	if _, _, err := us.Login(ctx, "a@b.com", "wrong-password"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	us, userRepo, _, _ := newUserService(t, ctrl)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "nobody@b.com").Return(nil, sql.ErrNoRows)

	if _, _, err := us.Login(ctx, "nobody@b.com", "whatever"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestUserService_RecordSystemActivityClampsRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	us, _, progressRepo, _ := newUserService(t, ctrl)
	ctx := context.Background()

	row := &models.SystemProgress{UserID: 3, System: models.SystemVascular, CompletionRate: 0.98}
	progressRepo.EXPECT().Get(ctx, int64(3), models.SystemVascular).Return(row, nil)
	progressRepo.EXPECT().Update(ctx, row).Return(nil)

	got, err := us.RecordSystemActivity(ctx, 3, models.SystemVascular, 0.1)
	if err != nil {
		t.Fatalf("RecordSystemActivity() error = %v", err)
	}
	if got.CompletionRate != 1 {
		t.Errorf("completion rate = %v, want clamped to 1", got.CompletionRate)
	}
	if got.LastInteraction == nil || !got.LastInteraction.Equal(testNow) {
		t.Errorf("last interaction = %v, want %v", got.LastInteraction, testNow)
	}
}
