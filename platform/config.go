package platform

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log         LogConfig         `toml:"log"`
	Server      ServerConfig      `toml:"server"`
	DB          DBConfig          `toml:"db"`
	Redis       RedisConfig       `toml:"redis"`
	Auth        AuthConfig        `toml:"auth"`
	Storage     StorageConfig     `toml:"storage"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	AddSource bool       `toml:"add_source"`
}

type ServerConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	RatePerMin  int      `toml:"rate_per_minute"`
}

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type AuthConfig struct {
	Secret         string `toml:"secret"`
	TokenTTLMin    int    `toml:"token_ttl_minutes"`
	RefreshTTLMin  int    `toml:"refresh_ttl_minutes"`
	BCryptCost     int    `toml:"bcrypt_cost"`
	AuthRatePerMin int    `toml:"auth_rate_per_minute"`
}

// TokenTTL returns the access token lifetime, defaulting to an hour.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMin <= 0 {
		return time.Hour
	}
	return time.Duration(a.TokenTTLMin) * time.Minute
}

type StorageConfig struct {
	Key    string `toml:"key"`
	Secret string `toml:"secret"`
	Region string `toml:"region"`
	Bucket string `toml:"bucket"`
	Root   string `toml:"root"`
}

type LeaderboardConfig struct {
	RefreshMinutes int `toml:"refresh_minutes"`
	CacheTTLSec    int `toml:"cache_ttl_seconds"`
	Retention      int `toml:"retention"`
}

func (l LeaderboardConfig) RefreshInterval() time.Duration {
	if l.RefreshMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(l.RefreshMinutes) * time.Minute
}

func (l LeaderboardConfig) CacheTTL() time.Duration {
	if l.CacheTTLSec <= 0 {
		return 60 * time.Second
	}
	return time.Duration(l.CacheTTLSec) * time.Second
}
