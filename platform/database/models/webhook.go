package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Domain event names carried by webhook deliveries.
const (
	EventMissionCompleted = "mission.completed"
	EventLessonCompleted  = "lesson.completed"
	EventLeaderboardBuilt = "leaderboard.built"
)

type WebhookSubscription struct {
	bun.BaseModel `bun:"table:webhook_subscriptions,alias:ws"`

	ID        int64     `bun:"id,pk,autoincrement"`
	TargetURL string    `bun:"target_url,notnull"`
	Secret    string    `bun:"secret,notnull" json:"-"`
	Event     string    `bun:"event,notnull"`
	IsActive  bool      `bun:"is_active,notnull,default:true"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
