package models

import (
	"time"

	"github.com/uptrace/bun"
)

type AnatomySystem string

const (
	SystemSkeletal    AnatomySystem = "skeletal"
	SystemMuscular    AnatomySystem = "muscular"
	SystemNervous     AnatomySystem = "nervous"
	SystemVascular    AnatomySystem = "vascular"
	SystemLymphatic   AnatomySystem = "lymphatic"
	SystemRespiratory AnatomySystem = "respiratory"
)

// AllAnatomySystems lists every trackable system; registration ensures one
// progress row per entry.
var AllAnatomySystems = []AnatomySystem{
	SystemSkeletal,
	SystemMuscular,
	SystemNervous,
	SystemVascular,
	SystemLymphatic,
	SystemRespiratory,
}

func (s AnatomySystem) Valid() bool {
	for _, known := range AllAnatomySystems {
		if s == known {
			return true
		}
	}
	return false
}

type SystemProgress struct {
	bun.BaseModel `bun:"table:user_system_progress,alias:sp"`

	ID              int64         `bun:"id,pk,autoincrement"`
	UserID          int64         `bun:"user_id,notnull"`
	System          AnatomySystem `bun:"system,notnull"`
	CompletionRate  float64       `bun:"completion_rate,notnull,default:0"`
	LastInteraction *time.Time    `bun:"last_interaction"`
	CreatedAt       time.Time     `bun:"created_at,notnull"`
	UpdatedAt       time.Time     `bun:"updated_at,notnull"`
}

// ApplyDelta shifts the completion rate by delta, clamped to [0, 1].
func (p *SystemProgress) ApplyDelta(delta float64, now time.Time) {
	rate := p.CompletionRate + delta
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	p.CompletionRate = rate
	p.LastInteraction = &now
}
