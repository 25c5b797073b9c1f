package dbpool

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DatabaseProperties describes the embedded-file backend. It is read once at
// pool construction; changing pool parameters requires a process restart.
type DatabaseProperties struct {
	// File is the database file path. Paths containing an in-memory
	// sentinel (":memory:" or "mode=memory") select a transient database.
	File string

	// Pragmas are driver connection parameters appended to the file path
	// as key=value query pairs.
	Pragmas map[string]string

	// PoolSize, when >= 1, is used verbatim for the primary pool.
	PoolSize int

	// MaxPoolSize caps the derived pool size when PoolSize is unset.
	MaxPoolSize int

	// JournalMode is the SQLite journal mode (for example "WAL").
	// Empty leaves the driver default.
	JournalMode string

	// BusyTimeout, when > 0, is applied per connection (whole milliseconds).
	BusyTimeout time.Duration
}

// Environment property keys consulted by CaptureEnvironment.
//
// Duration-valued keys are integers denominated in milliseconds.
const (
	EnvServerURL       = "DB_SERVER_URL"
	EnvServerUser      = "DB_SERVER_USER"
	EnvServerPassword  = "DB_SERVER_PASSWORD"
	EnvMaxPoolSize     = "DB_POOL_MAX_SIZE"
	EnvMinIdle         = "DB_POOL_MIN_IDLE"
	EnvConnectTimeout  = "DB_POOL_CONNECT_TIMEOUT_MS"
	EnvIdleTimeout     = "DB_POOL_IDLE_TIMEOUT_MS"
	EnvMaxLifetime     = "DB_POOL_MAX_LIFETIME_MS"
	EnvLeakThreshold   = "DB_POOL_LEAK_THRESHOLD_MS"
	EnvDevelopmentMode = "DB_DEVELOPMENT_MODE"
)

// Environment is an immutable snapshot of the environment-style properties
// for the networked backend. Capture it once at startup and pass it by value;
// builders never consult the live environment.
type Environment struct {
	// ServerURL is the networked-server connection URI. Its presence
	// selects the networked backend.
	ServerURL string

	// ServerUser and ServerPassword override the credentials embedded in
	// ServerURL when set.
	ServerUser     string
	ServerPassword string

	// MaxPoolSize overrides the server pool size when >= 1.
	MaxPoolSize int

	// MinIdle is the minimum idle connection count. Negative means unset;
	// the default is derived from the pool size.
	MinIdle int

	// ConnectTimeout, IdleTimeout, MaxLifetime, and LeakThreshold override
	// the corresponding pool timings when > 0.
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
	MaxLifetime    time.Duration
	LeakThreshold  time.Duration

	// DevelopmentMode permits the insecure localhost defaults for the
	// networked backend. Production deployments must leave it off and
	// configure ServerURL explicitly.
	DevelopmentMode bool
}

// CaptureEnvironment snapshots the given property lookup into an Environment.
//
// The lookup is consulted once per key, never retained. Unparsable numeric or
// boolean values are configuration errors.
func CaptureEnvironment(lookup func(key string) (string, bool)) (Environment, error) {
	env := Environment{MinIdle: -1}

	env.ServerURL = captureString(lookup, EnvServerURL)
	env.ServerUser = captureString(lookup, EnvServerUser)
	env.ServerPassword = captureString(lookup, EnvServerPassword)

	var err error

	if env.MaxPoolSize, err = captureInt(lookup, EnvMaxPoolSize, 0); err != nil {
		return Environment{}, err
	}
	if env.MinIdle, err = captureInt(lookup, EnvMinIdle, -1); err != nil {
		return Environment{}, err
	}

	if env.ConnectTimeout, err = captureMillis(lookup, EnvConnectTimeout); err != nil {
		return Environment{}, err
	}
	if env.IdleTimeout, err = captureMillis(lookup, EnvIdleTimeout); err != nil {
		return Environment{}, err
	}
	if env.MaxLifetime, err = captureMillis(lookup, EnvMaxLifetime); err != nil {
		return Environment{}, err
	}
	if env.LeakThreshold, err = captureMillis(lookup, EnvLeakThreshold); err != nil {
		return Environment{}, err
	}

	if raw, ok := lookupTrimmed(lookup, EnvDevelopmentMode); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Environment{}, fmt.Errorf("dbpool: %s: invalid boolean %q", EnvDevelopmentMode, raw)
		}
		env.DevelopmentMode = v
	}

	return env, nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	raw, ok := lookup(key)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func captureString(lookup func(string) (string, bool), key string) string {
	raw, _ := lookupTrimmed(lookup, key)
	return raw
}

func captureInt(lookup func(string) (string, bool), key string, unset int) (int, error) {
	raw, ok := lookupTrimmed(lookup, key)
	if !ok {
		return unset, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("dbpool: %s: invalid integer %q", key, raw)
	}

	return v, nil
}

func captureMillis(lookup func(string) (string, bool), key string) (time.Duration, error) {
	v, err := captureInt(lookup, key, 0)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("dbpool: %s: negative duration %d", key, v)
	}

	return time.Duration(v) * time.Millisecond, nil
}
