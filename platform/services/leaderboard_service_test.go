package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories/mock"
)

func newLeaderboardService(t *testing.T) (*LeaderboardService, *mock.MockLeaderboardRepository, *mock.MockUserRepository, *recordingEmitter) {
	ctrl := gomock.NewController(t)
	snapshotRepo := mock.NewMockLeaderboardRepository(ctrl)
	userRepo := mock.NewMockUserRepository(ctrl)
	emitter := &recordingEmitter{}

	ls := NewLeaderboardService(snapshotRepo, userRepo, nil, time.Minute, 10, emitter)
	ls.now = func() time.Time { return testNow }
	return ls, snapshotRepo, userRepo, emitter
}

func TestLeaderboardService_Build_RanksAndTieBreaks(t *testing.T) {
	ls, snapshotRepo, userRepo, emitter := newLeaderboardService(t)

	users := []*models.User{
		{ID: 3, DisplayName: "ana", XP: 300, Streak: 4},
		{ID: 9, DisplayName: "bia", XP: 300, Streak: 1},
		{ID: 1, DisplayName: "caio", XP: 100},
	}
	userRepo.EXPECT().GetTopByXP(gomock.Any(), DefaultLeaderboardLimit).Return(users, nil)
	snapshotRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.LeaderboardSnapshot) error {
			s.ID = 42
			return nil
		})
	snapshotRepo.EXPECT().Prune(gomock.Any(), models.ScopeGlobal, nil, 10).Return(int64(0), nil)

	snapshot, err := ls.Build(context.Background(), models.ScopeGlobal, nil, 0)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(snapshot.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(snapshot.Entries))
	}
	wantRanks := []struct {
		userID int64
		rank   int
	}{
		{3, 1},
		{9, 2},
		{1, 3},
	}
	for i, want := range wantRanks {
		entry := snapshot.Entries[i]
		if entry.UserID != want.userID || entry.Rank != want.rank {
			t.Errorf("entry[%d] = user %d rank %d, want user %d rank %d",
				i, entry.UserID, entry.Rank, want.userID, want.rank)
		}
	}
	if !snapshot.GeneratedAt.Equal(testNow) {
		t.Errorf("generated_at = %v, want %v", snapshot.GeneratedAt, testNow)
	}
	if len(emitter.events) != 1 || emitter.events[0] != models.EventLeaderboardBuilt {
		t.Errorf("events = %v, want one leaderboard.built", emitter.events)
	}
}

func TestLeaderboardService_Build_ScopeValidation(t *testing.T) {
	ls, _, _, _ := newLeaderboardService(t)
	ref := int64(5)

	tests := []struct {
		name  string
		scope models.LeaderboardScope
		ref   *int64
		limit int
	}{
		{name: "unknown scope", scope: "galaxy", limit: 10},
		{name: "classroom without reference", scope: models.ScopeClassroom, limit: 10},
		{name: "global with reference", scope: models.ScopeGlobal, ref: &ref, limit: 10},
		{name: "limit too large", scope: models.ScopeGlobal, limit: MaxLeaderboardLimit + 1},
		{name: "negative limit", scope: models.ScopeGlobal, limit: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ls.Build(context.Background(), tt.scope, tt.ref, tt.limit); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestLeaderboardService_Build_ClassroomScope(t *testing.T) {
	ls, snapshotRepo, userRepo, _ := newLeaderboardService(t)
	classroomID := int64(12)

	userRepo.EXPECT().
		GetTopByXPInClassroom(gomock.Any(), classroomID, 5).
		Return([]*models.User{{ID: 1, DisplayName: "ana", XP: 50}}, nil)
	snapshotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	snapshotRepo.EXPECT().Prune(gomock.Any(), models.ScopeClassroom, &classroomID, 10).Return(int64(2), nil)

	snapshot, err := ls.Build(context.Background(), models.ScopeClassroom, &classroomID, 5)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if snapshot.ReferenceID == nil || *snapshot.ReferenceID != classroomID {
		t.Errorf("reference_id = %v, want %d", snapshot.ReferenceID, classroomID)
	}
}

func TestLeaderboardService_Latest_BuildsWhenMissing(t *testing.T) {
	ls, snapshotRepo, userRepo, _ := newLeaderboardService(t)

	snapshotRepo.EXPECT().
		GetLatest(gomock.Any(), models.ScopeGlobal, nil).
		Return(nil, sql.ErrNoRows)
	userRepo.EXPECT().GetTopByXP(gomock.Any(), DefaultLeaderboardLimit).Return(nil, nil)
	snapshotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	snapshotRepo.EXPECT().Prune(gomock.Any(), models.ScopeGlobal, nil, 10).Return(int64(0), nil)

	snapshot, err := ls.Latest(context.Background(), models.ScopeGlobal, nil)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if len(snapshot.Entries) != 0 {
		t.Errorf("expected empty board from empty population")
	}
}

func TestLeaderboardService_Latest_ReturnsStoredSnapshot(t *testing.T) {
	ls, snapshotRepo, _, _ := newLeaderboardService(t)

	stored := &models.LeaderboardSnapshot{
		ID:          7,
		Scope:       models.ScopeGlobal,
		GeneratedAt: testNow.Add(-time.Minute),
		Entries:     []models.LeaderboardEntry{{UserID: 1, Rank: 1, XP: 10}},
	}
	snapshotRepo.EXPECT().
		GetLatest(gomock.Any(), models.ScopeGlobal, nil).
		Return(stored, nil)

	snapshot, err := ls.Latest(context.Background(), models.ScopeGlobal, nil)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if snapshot.ID != 7 {
		t.Errorf("snapshot id = %d, want stored snapshot 7", snapshot.ID)
	}
}
