package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env                string
	ListenAddr         string
	MaxConns           int
	DatabaseURL        string
	DBMaxConns         int
	DBMinConns         int
	DBMaxConnLifetime  time.Duration
	DBHealthCheck      time.Duration
	RedisURL           string
	NatsURL            string
	AuditArchivePath   string
	SeedFile           string
	AuthorityID        string
	EscalationInterval time.Duration
	NotifyTimeout      time.Duration
	NotifyWorkers      int
	NotifyQueue        int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment. A missing DATABASE_URL is returned as a warning
// alongside a usable config; the caller falls back to in-memory storage.
func Load() (Config, error) {
	cfg := Config{
		Env:                getenv("APP_ENV", "development"),
		ListenAddr:         getenv("LISTEN_ADDR", ":8080"),
		MaxConns:           getenvInt("MAX_CONNS", 256),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBMaxConns:         getenvInt("DB_MAX_CONNS", 10),
		DBMinConns:         getenvInt("DB_MIN_CONNS", 0),
		DBMaxConnLifetime:  getenvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBHealthCheck:      getenvDuration("DB_HEALTH_CHECK_PERIOD", 30*time.Second),
		RedisURL:           os.Getenv("REDIS_URL"),
		NatsURL:            os.Getenv("NATS_URL"),
		AuditArchivePath:   os.Getenv("AUDIT_ARCHIVE_PATH"),
		SeedFile:           os.Getenv("SEED_FILE"),
		AuthorityID:        getenv("AUTHORITY_ID", "regional-blood-authority"),
		EscalationInterval: getenvDuration("ESCALATION_INTERVAL", 2*time.Minute),
		NotifyTimeout:      getenvDuration("NOTIFY_TIMEOUT", 5*time.Second),
		NotifyWorkers:      getenvInt("NOTIFY_WORKERS", 4),
		NotifyQueue:        getenvInt("NOTIFY_QUEUE", 256),
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL not set, using in-memory storage")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
