package store

import (
	"time"

	"clubhouse/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures Postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the boot ping loop; PingTimeout bounds each ping
	ConnectRetries int
	PingTimeout    time.Duration
	RetryStep      time.Duration
}

// ConfigFrom reads DBURL, MAX_CONNS, SLOW_MS, LOG_SQL, CONNECT_RETRIES and
// PING_TIMEOUT from c (usually SERVICE_PGSQL_). Postgres is enabled when DBURL is set
func ConfigFrom(app string, c config.Conf) Config {
	url := c.MayString("DBURL", "")
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(c.MayInt("MAX_CONNS", 8)),
			LogSQL:         c.MayBool("LOG_SQL", false),
			SlowQueryMs:    c.MayInt("SLOW_MS", 200),
			ConnectRetries: c.MayInt("CONNECT_RETRIES", 6),
			PingTimeout:    c.MayDuration("PING_TIMEOUT", 3*time.Second),
			RetryStep:      c.MayDuration("RETRY_STEP", 500*time.Millisecond),
		},
	}
}
