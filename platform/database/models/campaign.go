package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Campaign struct {
	bun.BaseModel `bun:"table:campaigns,alias:c"`

	ID               int64     `bun:"id,pk,autoincrement"`
	Title            string    `bun:"title,notnull"`
	Description      string    `bun:"description,notnull"`
	AnatomySystem    string    `bun:"anatomy_system,notnull"`
	RecommendedLevel int       `bun:"recommended_level,notnull,default:1"`
	CreatedAt        time.Time `bun:"created_at,notnull"`
	UpdatedAt        time.Time `bun:"updated_at,notnull"`

	Lessons []*CampaignLesson `bun:"rel:has-many,join:id=campaign_id"`
}

type CampaignLesson struct {
	bun.BaseModel `bun:"table:campaign_lessons,alias:cl"`

	ID              int64     `bun:"id,pk,autoincrement"`
	CampaignID      int64     `bun:"campaign_id,notnull"`
	Position        int       `bun:"position,notnull"`
	Title           string    `bun:"title,notnull"`
	ContentURL      string    `bun:"content_url"`
	DurationMinutes int       `bun:"duration_minutes,notnull,default:10"`
	XPReward        int       `bun:"xp_reward,notnull,default:25"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

type CampaignProgressStatus string

const (
	CampaignStatusNotStarted CampaignProgressStatus = "not_started"
	CampaignStatusInProgress CampaignProgressStatus = "in_progress"
	CampaignStatusCompleted  CampaignProgressStatus = "completed"
)

func (s CampaignProgressStatus) Valid() bool {
	switch s {
	case CampaignStatusNotStarted, CampaignStatusInProgress, CampaignStatusCompleted:
		return true
	}
	return false
}

type CampaignProgress struct {
	bun.BaseModel `bun:"table:campaign_progress,alias:cp"`

	ID        int64                  `bun:"id,pk,autoincrement"`
	UserID    int64                  `bun:"user_id,notnull"`
	LessonID  int64                  `bun:"lesson_id,notnull"`
	Status      CampaignProgressStatus `bun:"status,notnull,default:'not_started'"`
	Score       *float64               `bun:"score"`
	CompletedAt *time.Time             `bun:"completed_at"`
	CreatedAt   time.Time              `bun:"created_at,notnull"`
	UpdatedAt   time.Time              `bun:"updated_at,notnull"`

	Lesson *CampaignLesson `bun:"rel:belongs-to,join:lesson_id=id"`
}
