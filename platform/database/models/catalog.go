package models

// DefaultMissions returns the fixed catalog of missions every new user is
// enrolled into: two daily missions and one weekly one. Definitions are
// shared across users and deduplicated by title.
func DefaultMissions() []*Mission {
	return []*Mission{
		{
			Title:       "Realize um Sprint",
			Description: "Conclua um sprint de 60 segundos",
			XPReward:    100,
			Target:      1,
			Frequency:   MissionFrequencyDaily,
			Category:    "gameplay",
		},
		{
			Title:       "Estude um Sistema",
			Description: "Complete uma licao da campanha",
			XPReward:    150,
			Target:      1,
			Frequency:   MissionFrequencyDaily,
			Category:    "learning",
		},
		{
			Title:       "Compartilhe com a turma",
			Description: "Envie feedback para sua turma",
			XPReward:    80,
			Target:      1,
			Frequency:   MissionFrequencyWeekly,
			Category:    "community",
		},
	}
}
