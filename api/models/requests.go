package models

// RegisterRequest creates an account.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	ProfileType string `json:"profile_type"`
}

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest patches the caller's profile. Nil fields are left
// unchanged.
type UpdateProfileRequest struct {
	DisplayName *string        `json:"display_name"`
	AvatarURL   *string        `json:"avatar_url"`
	Preferences map[string]any `json:"preferences"`
}

// MissionProgressRequest advances one mission.
type MissionProgressRequest struct {
	Increment int `json:"increment"`
}

// CreateMissionRequest adds a mission definition to the catalog.
type CreateMissionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xp_reward"`
	Target      int    `json:"target"`
	Frequency   string `json:"frequency"`
	Category    string `json:"category"`
}

// BuildLeaderboardRequest forces a snapshot rebuild.
type BuildLeaderboardRequest struct {
	Scope       string `json:"scope"`
	ReferenceID *int64 `json:"reference_id"`
	Limit       int    `json:"limit"`
}

// CreateClassroomRequest opens a classroom.
type CreateClassroomRequest struct {
	Name           string `json:"name"`
	OrganizationID *int64 `json:"organization_id"`
}

// JoinClassroomRequest enrolls the caller via invite code.
type JoinClassroomRequest struct {
	InviteCode string `json:"invite_code"`
}

// CreateCampaignRequest adds a campaign.
type CreateCampaignRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	AnatomySystem    string `json:"anatomy_system"`
	RecommendedLevel int    `json:"recommended_level"`
}

// CreateLessonRequest adds a lesson to a campaign.
type CreateLessonRequest struct {
	Position        int    `json:"position"`
	Title           string `json:"title"`
	ContentURL      string `json:"content_url"`
	DurationMinutes int    `json:"duration_minutes"`
	XPReward        int    `json:"xp_reward"`
}

// CompleteLessonRequest finishes a lesson with an optional score.
type CompleteLessonRequest struct {
	Score *float64 `json:"score"`
}

// CreateQuestionRequest adds a quiz question with its options.
type CreateQuestionRequest struct {
	Prompt        string                 `json:"prompt"`
	AnatomySystem string                 `json:"anatomy_system"`
	Difficulty    string                 `json:"difficulty"`
	Options       []CreateQuestionOption `json:"options"`
}

type CreateQuestionOption struct {
	Label     string `json:"label"`
	IsCorrect bool   `json:"is_correct"`
}

// StartQuizRequest opens a quiz session.
type StartQuizRequest struct {
	Mode       string `json:"mode"`
	System     string `json:"system"`
	Difficulty string `json:"difficulty"`
	Size       int    `json:"size"`
}

// SubmitAnswerRequest records one answer in a session.
type SubmitAnswerRequest struct {
	QuestionID int64  `json:"question_id"`
	OptionID   *int64 `json:"option_id"`
}

// FinishQuizRequest closes a session.
type FinishQuizRequest struct {
	DurationSeconds int `json:"duration_seconds"`
}

// SystemActivityRequest shifts one anatomy system's completion rate.
type SystemActivityRequest struct {
	System string  `json:"system"`
	Delta  float64 `json:"delta"`
}

// CreateWebhookRequest registers a subscriber.
type CreateWebhookRequest struct {
	TargetURL string `json:"target_url"`
	Secret    string `json:"secret"`
	Event     string `json:"event"`
}
