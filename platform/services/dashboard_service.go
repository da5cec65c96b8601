package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anatomypro/backend/platform/cache"
	"github.com/anatomypro/backend/platform/database/models"
)

const dashboardCacheTTL = 30 * time.Second

// Dashboard is the aggregate a client renders on its home screen.
type Dashboard struct {
	User        *models.User                `json:"user"`
	Missions    []*models.MissionProgress   `json:"missions"`
	Systems     []*models.SystemProgress    `json:"systems"`
	Leaderboard *models.LeaderboardSnapshot `json:"leaderboard"`
}

type DashboardService struct {
	users        *UserService
	missions     *MissionService
	leaderboards *LeaderboardService
	cache        *cache.Cache
}

func NewDashboardService(users *UserService, missions *MissionService, leaderboards *LeaderboardService, c *cache.Cache) *DashboardService {
	return &DashboardService{
		users:        users,
		missions:     missions,
		leaderboards: leaderboards,
		cache:        c,
	}
}

// Get assembles the dashboard for a user. The result is cached briefly;
// mission windows are still reconciled on a cache miss because
// ActiveMissions runs before the cache write.
func (ds *DashboardService) Get(ctx context.Context, userID int64) (*Dashboard, error) {
	key := fmt.Sprintf("dashboard:%d", userID)
	var cached Dashboard
	if hit, err := ds.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	user, err := ds.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	missions, err := ds.missions.ActiveMissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	systems, err := ds.users.SystemProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	leaderboard, err := ds.leaderboards.Latest(ctx, models.ScopeGlobal, nil)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		User:        user,
		Missions:    missions,
		Systems:     systems,
		Leaderboard: leaderboard,
	}
	_ = ds.cache.SetJSON(ctx, key, dashboard, dashboardCacheTTL)
	return dashboard, nil
}
