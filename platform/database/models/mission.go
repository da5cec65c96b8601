package models

import (
	"time"

	"github.com/uptrace/bun"
)

type MissionFrequency string

const (
	MissionFrequencyDaily  MissionFrequency = "daily"
	MissionFrequencyWeekly MissionFrequency = "weekly"
)

// Window returns the reset window for a frequency. Both enum values are
// handled explicitly; an unknown frequency gets the daily window so that a
// bad row can never produce a mission that stays stale forever.
func (f MissionFrequency) Window() time.Duration {
	switch f {
	case MissionFrequencyDaily:
		return 24 * time.Hour
	case MissionFrequencyWeekly:
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

func (f MissionFrequency) Valid() bool {
	switch f {
	case MissionFrequencyDaily, MissionFrequencyWeekly:
		return true
	}
	return false
}

type Mission struct {
	bun.BaseModel `bun:"table:missions,alias:m"`

	ID          int64            `bun:"id,pk,autoincrement"`
	Title       string           `bun:"title,notnull,unique"`
	Description string           `bun:"description,notnull"`
	XPReward    int              `bun:"xp_reward,notnull,default:50"`
	Target      int              `bun:"target,notnull,default:1"`
	Frequency   MissionFrequency `bun:"frequency,notnull,default:'daily'"`
	Category    string           `bun:"category,notnull,default:'general'"`
	CreatedAt   time.Time        `bun:"created_at,notnull"`
	UpdatedAt   time.Time        `bun:"updated_at,notnull"`
}

type MissionProgressStatus string

const (
	MissionStatusPending   MissionProgressStatus = "pending"
	MissionStatusCompleted MissionProgressStatus = "completed"
)

type MissionProgress struct {
	bun.BaseModel `bun:"table:mission_progress,alias:mp"`

	ID        int64                 `bun:"id,pk,autoincrement"`
	MissionID int64                 `bun:"mission_id,notnull"`
	UserID    int64                 `bun:"user_id,notnull"`
	Progress  int                   `bun:"progress,notnull,default:0"`
	Status    MissionProgressStatus `bun:"status,notnull,default:'pending'"`
	ExpiresAt *time.Time            `bun:"expires_at"`
	CreatedAt time.Time             `bun:"created_at,notnull"`
	UpdatedAt time.Time             `bun:"updated_at,notnull"`

	Mission *Mission `bun:"rel:belongs-to,join:mission_id=id"`
}

// Expired reports whether the row's cycle window has passed at the given
// instant. Rows without an expiry never expire.
func (p *MissionProgress) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

// Reconcile resets an expired row in place: progress back to zero, status
// back to pending, and a fresh expiry one window from now. It returns true
// when the row changed and needs to be persisted. The caller decides when
// "now" is, which keeps the reset logic deterministic under test.
func (p *MissionProgress) Reconcile(now time.Time) bool {
	if !p.Expired(now) {
		return false
	}
	freq := MissionFrequencyDaily
	if p.Mission != nil {
		freq = p.Mission.Frequency
	}
	expires := now.Add(freq.Window())
	p.Progress = 0
	p.Status = MissionStatusPending
	p.ExpiresAt = &expires
	return true
}

// Apply adds increment to the row's progress, clamped to [0, target].
// Completion latches: once a row is completed it stays completed until the
// next cycle reset, even if a negative increment later drops the count.
func (p *MissionProgress) Apply(increment int) {
	target := 1
	if p.Mission != nil {
		target = p.Mission.Target
	}
	next := p.Progress + increment
	if next > target {
		next = target
	}
	if next < 0 {
		next = 0
	}
	p.Progress = next
	if p.Progress >= target {
		p.Status = MissionStatusCompleted
	}
}
