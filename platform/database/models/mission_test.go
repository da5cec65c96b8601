package models

import (
	"testing"
	"time"
)

func TestMissionFrequency_Window(t *testing.T) {
	tests := []struct {
		name string
		freq MissionFrequency
		want time.Duration
	}{
		{name: "daily", freq: MissionFrequencyDaily, want: 24 * time.Hour},
		{name: "weekly", freq: MissionFrequencyWeekly, want: 7 * 24 * time.Hour},
		{name: "unknown falls back to daily", freq: MissionFrequency("monthly"), want: 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.freq.Window(); got != tt.want {
				t.Errorf("Window() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissionProgress_Reconcile(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	daily := &Mission{Target: 3, Frequency: MissionFrequencyDaily}
	weekly := &Mission{Target: 1, Frequency: MissionFrequencyWeekly}

	tests := []struct {
		name        string
		progress    *MissionProgress
		wantChanged bool
		wantExpires time.Time
	}{
		{
			name:        "expired daily row resets",
			progress:    &MissionProgress{Progress: 2, Status: MissionStatusCompleted, ExpiresAt: &past, Mission: daily},
			wantChanged: true,
			wantExpires: now.Add(24 * time.Hour),
		},
		{
			name:        "expired weekly row gets weekly window",
			progress:    &MissionProgress{Progress: 1, Status: MissionStatusCompleted, ExpiresAt: &past, Mission: weekly},
			wantChanged: true,
			wantExpires: now.Add(7 * 24 * time.Hour),
		},
		{
			name:        "live row untouched",
			progress:    &MissionProgress{Progress: 2, Status: MissionStatusPending, ExpiresAt: &future, Mission: daily},
			wantChanged: false,
		},
		{
			name:        "row without expiry never resets",
			progress:    &MissionProgress{Progress: 2, Status: MissionStatusPending, Mission: daily},
			wantChanged: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := tt.progress.Reconcile(now)
			if changed != tt.wantChanged {
				t.Fatalf("Reconcile() = %v, want %v", changed, tt.wantChanged)
			}
			if !changed {
				return
			}
			if tt.progress.Progress != 0 {
				t.Errorf("progress = %d, want 0 after reset", tt.progress.Progress)
			}
			if tt.progress.Status != MissionStatusPending {
				t.Errorf("status = %q, want pending after reset", tt.progress.Status)
			}
			if !tt.progress.ExpiresAt.Equal(tt.wantExpires) {
				t.Errorf("expires_at = %v, want %v", tt.progress.ExpiresAt, tt.wantExpires)
			}
		})
	}
}

func TestMissionProgress_Apply(t *testing.T) {
	mission := &Mission{Target: 3}

	tests := []struct {
		name         string
		start        int
		status       MissionProgressStatus
		increment    int
		wantProgress int
		wantStatus   MissionProgressStatus
	}{
		{name: "simple increment", start: 0, status: MissionStatusPending, increment: 1, wantProgress: 1, wantStatus: MissionStatusPending},
		{name: "reach target completes", start: 2, status: MissionStatusPending, increment: 1, wantProgress: 3, wantStatus: MissionStatusCompleted},
		{name: "overshoot clamps to target", start: 2, status: MissionStatusPending, increment: 10, wantProgress: 3, wantStatus: MissionStatusCompleted},
		{name: "negative clamps to zero", start: 1, status: MissionStatusPending, increment: -5, wantProgress: 0, wantStatus: MissionStatusPending},
		{name: "completion latches under negative", start: 3, status: MissionStatusCompleted, increment: -2, wantProgress: 1, wantStatus: MissionStatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &MissionProgress{Progress: tt.start, Status: tt.status, Mission: mission}
			p.Apply(tt.increment)
			if p.Progress != tt.wantProgress {
				t.Errorf("progress = %d, want %d", p.Progress, tt.wantProgress)
			}
			if p.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", p.Status, tt.wantStatus)
			}
		})
	}
}

func TestProfileType_DefaultRole(t *testing.T) {
	tests := []struct {
		profile ProfileType
		want    UserRole
	}{
		{ProfileTypeStudent, UserRoleStudent},
		{ProfileTypeProfessional, UserRoleProfessional},
		{ProfileTypeProfessor, UserRoleTeacher},
		{ProfileTypeGuest, UserRoleStudent},
		{ProfileType("other"), UserRoleStudent},
	}
	for _, tt := range tests {
		if got := tt.profile.DefaultRole(); got != tt.want {
			t.Errorf("DefaultRole(%q) = %q, want %q", tt.profile, got, tt.want)
		}
	}
}

func TestSystemProgress_ApplyDelta(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	p := &SystemProgress{CompletionRate: 0.95}
	p.ApplyDelta(0.2, now)
	if p.CompletionRate != 1 {
		t.Errorf("completion rate = %v, want clamp at 1", p.CompletionRate)
	}
	p.ApplyDelta(-5, now)
	if p.CompletionRate != 0 {
		t.Errorf("completion rate = %v, want clamp at 0", p.CompletionRate)
	}
	if p.LastInteraction == nil || !p.LastInteraction.Equal(now) {
		t.Errorf("last interaction = %v, want %v", p.LastInteraction, now)
	}
}
