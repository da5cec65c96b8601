package models

import (
	"time"

	"github.com/uptrace/bun"
)

type LeaderboardScope string

const (
	ScopeGlobal       LeaderboardScope = "global"
	ScopeOrganization LeaderboardScope = "organization"
	ScopeClassroom    LeaderboardScope = "classroom"
	ScopeFriends      LeaderboardScope = "friends"
)

func (s LeaderboardScope) Valid() bool {
	switch s {
	case ScopeGlobal, ScopeOrganization, ScopeClassroom, ScopeFriends:
		return true
	}
	return false
}

// Scoped reports whether the scope ranks a sub-population identified by a
// reference id. Global and friends rankings ignore the reference.
func (s LeaderboardScope) Scoped() bool {
	return s == ScopeOrganization || s == ScopeClassroom
}

// LeaderboardEntry is one ranked row inside a snapshot's jsonb payload.
type LeaderboardEntry struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	XP          int64  `json:"xp"`
	Streak      int    `json:"streak"`
	Rank        int    `json:"rank"`
	Avatar      string `json:"avatar,omitempty"`
}

// LeaderboardSnapshot is an immutable ranking computation. Rows are only
// ever inserted; a newer snapshot for the same scope/reference supersedes
// older ones without touching them.
type LeaderboardSnapshot struct {
	bun.BaseModel `bun:"table:leaderboard_snapshots,alias:ls"`

	ID          int64              `bun:"id,pk,autoincrement"`
	Scope       LeaderboardScope   `bun:"scope,notnull"`
	ReferenceID *int64             `bun:"reference_id"`
	GeneratedAt time.Time          `bun:"generated_at,notnull"`
	Entries     []LeaderboardEntry `bun:"entries,type:jsonb"`
	CreatedAt   time.Time          `bun:"created_at,notnull"`
}
