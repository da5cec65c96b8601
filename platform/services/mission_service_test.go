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

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type recordingEmitter struct {
	events []string
}

func (r *recordingEmitter) Emit(_ context.Context, event string, _ map[string]any) {
	r.events = append(r.events, event)
}

func newMissionService(t *testing.T) (*MissionService, *mock.MockMissionRepository, *mock.MockUserRepository, *recordingEmitter) {
	ctrl := gomock.NewController(t)
	missionRepo := mock.NewMockMissionRepository(ctrl)
	userRepo := mock.NewMockUserRepository(ctrl)
	emitter := &recordingEmitter{}

	ms := NewMissionService(missionRepo, userRepo, emitter)
	ms.now = func() time.Time { return testNow }
	return ms, missionRepo, userRepo, emitter
}

func TestMissionService_ActiveMissions_ResetsExpiredRows(t *testing.T) {
	ms, missionRepo, _, _ := newMissionService(t)

	expired := testNow.Add(-time.Hour)
	live := testNow.Add(time.Hour)
	rows := []*models.MissionProgress{
		{
			ID: 1, UserID: 7, MissionID: 1, Progress: 1, Status: models.MissionStatusCompleted,
			ExpiresAt: &expired,
			Mission:   &models.Mission{ID: 1, Title: "Realize um Sprint", Target: 1, Frequency: models.MissionFrequencyDaily},
		},
		{
			ID: 2, UserID: 7, MissionID: 2, Progress: 0, Status: models.MissionStatusPending,
			ExpiresAt: &live,
			Mission:   &models.Mission{ID: 2, Title: "Estude um Sistema", Target: 1, Frequency: models.MissionFrequencyDaily},
		},
	}

	missionRepo.EXPECT().
		GetProgressForUser(gomock.Any(), int64(7)).
		Return(rows, nil)
	missionRepo.EXPECT().
		SaveProgressBatch(gomock.Any(), gomock.Len(1)).
		Return(nil)

	got, err := ms.ActiveMissions(context.Background(), 7)
	if err != nil {
		t.Fatalf("ActiveMissions() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}

	reset := got[0]
	if reset.Progress != 0 || reset.Status != models.MissionStatusPending {
		t.Errorf("expired row not reset: progress=%d status=%q", reset.Progress, reset.Status)
	}
	wantExpiry := testNow.Add(24 * time.Hour)
	if !reset.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expires_at = %v, want %v", reset.ExpiresAt, wantExpiry)
	}
	if got[1].Status != models.MissionStatusPending || got[1].Progress != 0 {
		t.Errorf("live row should be untouched")
	}
}

func TestMissionService_ActiveMissions_SeedsFirstRead(t *testing.T) {
	ms, missionRepo, _, _ := newMissionService(t)

	catalog := []*models.Mission{
		{ID: 1, Title: "Realize um Sprint", Target: 1, Frequency: models.MissionFrequencyDaily},
		{ID: 2, Title: "Compartilhe com a turma", Target: 1, Frequency: models.MissionFrequencyWeekly},
	}
	live := testNow.Add(time.Hour)
	seeded := []*models.MissionProgress{
		{ID: 10, UserID: 7, MissionID: 1, ExpiresAt: &live, Mission: catalog[0]},
		{ID: 11, UserID: 7, MissionID: 2, ExpiresAt: &live, Mission: catalog[1]},
	}

	first := missionRepo.EXPECT().
		GetProgressForUser(gomock.Any(), int64(7)).
		Return(nil, nil)
	missionRepo.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)
	missionRepo.EXPECT().CreateProgress(gomock.Any(), gomock.Any()).Times(2).Return(nil)
	missionRepo.EXPECT().
		GetProgressForUser(gomock.Any(), int64(7)).
		After(first).
		Return(seeded, nil)

	got, err := ms.ActiveMissions(context.Background(), 7)
	if err != nil {
		t.Fatalf("ActiveMissions() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2 seeded rows", len(got))
	}
}

func TestMissionService_SeedDefaults_Idempotent(t *testing.T) {
	ms, missionRepo, _, _ := newMissionService(t)

	catalog := []*models.Mission{
		{ID: 1, Title: "Realize um Sprint", Target: 1, Frequency: models.MissionFrequencyDaily},
		{ID: 2, Title: "Estude um Sistema", Target: 1, Frequency: models.MissionFrequencyDaily},
		{ID: 3, Title: "Compartilhe com a turma", Target: 1, Frequency: models.MissionFrequencyWeekly},
	}
	missionRepo.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)

	// Mirrors the conflict-skipping insert: the first row per
	// (user, mission) wins, later ones are dropped silently.
	rows := make(map[int64]*models.MissionProgress)
	missionRepo.EXPECT().
		CreateProgress(gomock.Any(), gomock.Any()).
		Times(6).
		DoAndReturn(func(_ context.Context, p *models.MissionProgress) error {
			if _, exists := rows[p.MissionID]; !exists {
				rows[p.MissionID] = p
			}
			return nil
		})

	if err := ms.SeedDefaults(context.Background(), 7); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}

	ms.now = func() time.Time { return testNow.Add(time.Hour) }
	if err := ms.SeedDefaults(context.Background(), 7); err != nil {
		t.Fatalf("SeedDefaults() second call error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (no duplicates)", len(rows))
	}
	wantExpiries := map[int64]time.Time{
		1: testNow.Add(24 * time.Hour),
		2: testNow.Add(24 * time.Hour),
		3: testNow.Add(168 * time.Hour),
	}
	for missionID, want := range wantExpiries {
		row := rows[missionID]
		if row == nil {
			t.Fatalf("mission %d never seeded", missionID)
		}
		if row.ExpiresAt == nil || !row.ExpiresAt.Equal(want) {
			t.Errorf("mission %d expires_at = %v, want %v from the first seeding", missionID, row.ExpiresAt, want)
		}
		if row.Progress != 0 || row.Status != models.MissionStatusPending {
			t.Errorf("mission %d seeded as progress=%d status=%q, want fresh pending row", missionID, row.Progress, row.Status)
		}
	}
}

func TestMissionService_IncrementProgress_CompletionAwardsOnce(t *testing.T) {
	ms, missionRepo, userRepo, emitter := newMissionService(t)

	mission := &models.Mission{ID: 1, Title: "Realize um Sprint", XPReward: 100, Target: 1, Frequency: models.MissionFrequencyDaily}
	live := testNow.Add(time.Hour)
	row := &models.MissionProgress{
		ID: 1, UserID: 7, MissionID: 1, Progress: 0, Status: models.MissionStatusPending,
		ExpiresAt: &live, Mission: mission,
	}

	missionRepo.EXPECT().GetProgress(gomock.Any(), int64(7), int64(1)).Return(row, nil)
	missionRepo.EXPECT().UpdateProgress(gomock.Any(), row).Return(nil)
	userRepo.EXPECT().AddXP(gomock.Any(), int64(7), int64(100)).Return(nil)

	got, err := ms.IncrementProgress(context.Background(), 7, 1, 1)
	if err != nil {
		t.Fatalf("IncrementProgress() error = %v", err)
	}
	if got.Status != models.MissionStatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if len(emitter.events) != 1 || emitter.events[0] != models.EventMissionCompleted {
		t.Errorf("events = %v, want one mission.completed", emitter.events)
	}

	// A second increment on the completed row stays clamped and must not
	// award again.
	missionRepo.EXPECT().GetProgress(gomock.Any(), int64(7), int64(1)).Return(got, nil)
	missionRepo.EXPECT().UpdateProgress(gomock.Any(), got).Return(nil)

	again, err := ms.IncrementProgress(context.Background(), 7, 1, 1)
	if err != nil {
		t.Fatalf("IncrementProgress() second call error = %v", err)
	}
	if again.Progress != 1 {
		t.Errorf("progress = %d, want clamp at target 1", again.Progress)
	}
	if len(emitter.events) != 1 {
		t.Errorf("completion event emitted twice")
	}
}

func TestMissionService_IncrementProgress_ExpiredRowResetsFirst(t *testing.T) {
	ms, missionRepo, _, _ := newMissionService(t)

	mission := &models.Mission{ID: 1, Title: "Realize um Sprint", XPReward: 100, Target: 3, Frequency: models.MissionFrequencyDaily}
	expired := testNow.Add(-time.Minute)
	row := &models.MissionProgress{
		ID: 1, UserID: 7, MissionID: 1, Progress: 2, Status: models.MissionStatusPending,
		ExpiresAt: &expired, Mission: mission,
	}

	missionRepo.EXPECT().GetProgress(gomock.Any(), int64(7), int64(1)).Return(row, nil)
	missionRepo.EXPECT().UpdateProgress(gomock.Any(), row).Return(nil)

	got, err := ms.IncrementProgress(context.Background(), 7, 1, 1)
	if err != nil {
		t.Fatalf("IncrementProgress() error = %v", err)
	}
	// Stale count is discarded: the increment lands on a fresh window.
	if got.Progress != 1 {
		t.Errorf("progress = %d, want 1 after reset then increment", got.Progress)
	}
	if got.Status != models.MissionStatusPending {
		t.Errorf("status = %q, want pending", got.Status)
	}
}

func TestMissionService_IncrementProgress_UnknownRow(t *testing.T) {
	ms, missionRepo, _, _ := newMissionService(t)

	missionRepo.EXPECT().
		GetProgress(gomock.Any(), int64(7), int64(99)).
		Return(nil, sql.ErrNoRows)

	_, err := ms.IncrementProgress(context.Background(), 7, 99, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestMissionService_CreateMission_Validation(t *testing.T) {
	ms, _, _, _ := newMissionService(t)

	tests := []struct {
		name    string
		mission *models.Mission
	}{
		{name: "missing title", mission: &models.Mission{Target: 1, Frequency: models.MissionFrequencyDaily}},
		{name: "zero target", mission: &models.Mission{Title: "x", Target: 0, Frequency: models.MissionFrequencyDaily}},
		{name: "bad frequency", mission: &models.Mission{Title: "x", Target: 1, Frequency: "hourly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ms.CreateMission(context.Background(), tt.mission); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
