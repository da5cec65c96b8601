package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/anatomypro/backend/platform"
	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/logger"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg platform.DBConfig) (*DB, error) {
	// Probe reachability before handing the config to the pool so a dead
	// host fails fast with a clear error.
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	var conn net.Conn
	var err error
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database unreachable at %s: %w", addr, err)
	}
	conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &DB{pool: pool, bunDB: newBunDB(cfg)}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func buildConnString(cfg platform.DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func newBunDB(cfg platform.DBConfig) *bun.DB {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if cfg.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// Ping verifies both database handles are usable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	logger.LogQuery(sql, time.Since(start), err,
		slog.String("operation", "exec"))
	return result, err
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, sql, args...)
	logger.LogQuery(sql, time.Since(start), err,
		slog.String("operation", "query"))
	return rows, err
}

// InitializeSchema creates all tables and indexes and seeds the mission
// catalog. Safe to run repeatedly.
func (db *DB) InitializeSchema(ctx context.Context) error {
	tables := []interface{}{
		(*models.Organization)(nil),
		(*models.User)(nil),
		(*models.Classroom)(nil),
		(*models.ClassroomMembership)(nil),
		(*models.Mission)(nil),
		(*models.MissionProgress)(nil),
		(*models.LeaderboardSnapshot)(nil),
		(*models.Campaign)(nil),
		(*models.CampaignLesson)(nil),
		(*models.CampaignProgress)(nil),
		(*models.QuizQuestion)(nil),
		(*models.QuizOption)(nil),
		(*models.QuizSession)(nil),
		(*models.QuizAttempt)(nil),
		(*models.SystemProgress)(nil),
		(*models.WebhookSubscription)(nil),
	}

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);",
		"CREATE INDEX IF NOT EXISTS idx_users_organization ON users(organization_id);",
		"CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC, id ASC);",
		"CREATE INDEX IF NOT EXISTS idx_classrooms_invite_code ON classrooms(invite_code);",
		"CREATE INDEX IF NOT EXISTS idx_memberships_classroom ON classroom_memberships(classroom_id, role);",
		"CREATE INDEX IF NOT EXISTS idx_memberships_user ON classroom_memberships(user_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_unique ON classroom_memberships(classroom_id, user_id);",
		"CREATE INDEX IF NOT EXISTS idx_missions_title ON missions(title);",
		"CREATE INDEX IF NOT EXISTS idx_mission_progress_user ON mission_progress(user_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_mission_progress_user_mission ON mission_progress(user_id, mission_id);",
		"CREATE INDEX IF NOT EXISTS idx_mission_progress_expires ON mission_progress(expires_at);",
		"CREATE INDEX IF NOT EXISTS idx_snapshots_scope ON leaderboard_snapshots(scope, reference_id, generated_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_campaign_lessons_campaign ON campaign_lessons(campaign_id, position);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_campaign_progress_user_lesson ON campaign_progress(user_id, lesson_id);",
		"CREATE INDEX IF NOT EXISTS idx_quiz_questions_system ON quiz_questions(anatomy_system, difficulty);",
		"CREATE INDEX IF NOT EXISTS idx_quiz_options_question ON quiz_options(question_id);",
		"CREATE INDEX IF NOT EXISTS idx_quiz_sessions_user ON quiz_sessions(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_quiz_attempts_session ON quiz_attempts(session_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_system_progress_user_system ON user_system_progress(user_id, system);",
		"CREATE INDEX IF NOT EXISTS idx_webhooks_event ON webhook_subscriptions(event) WHERE is_active = true;",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.InitializeMissionData(ctx); err != nil {
		return fmt.Errorf("failed to initialize mission data: %w", err)
	}

	return nil
}

// InitializeMissionData inserts the default mission catalog, skipping
// titles that already exist.
func (db *DB) InitializeMissionData(ctx context.Context) error {
	now := time.Now()
	for _, mission := range models.DefaultMissions() {
		mission.CreatedAt = now
		mission.UpdatedAt = now
		_, err := db.bunDB.NewInsert().
			Model(mission).
			On("CONFLICT (title) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed mission %q: %w", mission.Title, err)
		}
	}

	logger.LogSystem("Mission catalog seeded",
		slog.Int("missions", len(models.DefaultMissions())))
	return nil
}
