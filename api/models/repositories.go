package models

import (
	"github.com/anatomypro/backend/platform/database/repositories"
)

// Repositories groups all repository interfaces for easy injection
type Repositories struct {
	User           repositories.UserRepository
	Mission        repositories.MissionRepository
	Leaderboard    repositories.LeaderboardRepository
	Classroom      repositories.ClassroomRepository
	Campaign       repositories.CampaignRepository
	Quiz           repositories.QuizRepository
	SystemProgress repositories.SystemProgressRepository
	Webhook        repositories.WebhookRepository
}

// NewRepositories creates a new repositories group from individual repositories
func NewRepositories(
	user repositories.UserRepository,
	mission repositories.MissionRepository,
	leaderboard repositories.LeaderboardRepository,
	classroom repositories.ClassroomRepository,
	campaign repositories.CampaignRepository,
	quiz repositories.QuizRepository,
	systemProgress repositories.SystemProgressRepository,
	webhook repositories.WebhookRepository,
) *Repositories {
	return &Repositories{
		User:           user,
		Mission:        mission,
		Leaderboard:    leaderboard,
		Classroom:      classroom,
		Campaign:       campaign,
		Quiz:           quiz,
		SystemProgress: systemProgress,
		Webhook:        webhook,
	}
}
