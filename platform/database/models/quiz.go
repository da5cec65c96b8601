package models

import (
	"time"

	"github.com/uptrace/bun"
)

type QuizMode string

const (
	QuizModeSprint   QuizMode = "sprint"
	QuizModeCampaign QuizMode = "campaign"
	QuizModeOSCE     QuizMode = "osce"
	QuizModeSRS      QuizMode = "srs"
)

func (m QuizMode) Valid() bool {
	switch m {
	case QuizModeSprint, QuizModeCampaign, QuizModeOSCE, QuizModeSRS:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuizQuestion struct {
	bun.BaseModel `bun:"table:quiz_questions,alias:qq"`

	ID            int64      `bun:"id,pk,autoincrement"`
	Prompt        string     `bun:"prompt,notnull"`
	AnatomySystem string     `bun:"anatomy_system,notnull"`
	Difficulty    Difficulty `bun:"difficulty,notnull,default:'medium'"`
	CreatedAt     time.Time  `bun:"created_at,notnull"`
	UpdatedAt     time.Time  `bun:"updated_at,notnull"`

	Options []*QuizOption `bun:"rel:has-many,join:id=question_id"`
}

type QuizOption struct {
	bun.BaseModel `bun:"table:quiz_options,alias:qo"`

	ID         int64     `bun:"id,pk,autoincrement"`
	QuestionID int64     `bun:"question_id,notnull"`
	Label      string    `bun:"label,notnull"`
	IsCorrect  bool      `bun:"is_correct,notnull,default:false"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
}

type QuizSession struct {
	bun.BaseModel `bun:"table:quiz_sessions,alias:qs"`

	ID              int64     `bun:"id,pk,autoincrement"`
	UserID          int64     `bun:"user_id,notnull"`
	Mode            QuizMode  `bun:"mode,notnull"`
	System          string    `bun:"system"`
	Score           float64   `bun:"score,notnull,default:0"`
	DurationSeconds int       `bun:"duration_seconds,notnull,default:0"`
	Completed       bool      `bun:"completed,notnull,default:false"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

type QuizAttempt struct {
	bun.BaseModel `bun:"table:quiz_attempts,alias:qa"`

	ID               int64     `bun:"id,pk,autoincrement"`
	SessionID        int64     `bun:"session_id,notnull"`
	QuestionID       int64     `bun:"question_id,notnull"`
	SelectedOptionID *int64    `bun:"selected_option_id"`
	IsCorrect        bool      `bun:"is_correct,notnull,default:false"`
	CreatedAt        time.Time `bun:"created_at,notnull"`
}
