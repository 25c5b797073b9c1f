package dbpool

import (
	"math"
	"runtime"
	"time"
)

// availableParallelism is a package-private seam used by tests to pin the
// host parallelism for deterministic sizing checks.
var availableParallelism = runtime.NumCPU

// Pool tuning defaults. Each resolve function below documents the precedence
// order for its parameter; overrides always come from the captured
// Environment, never from the live process environment.
const (
	defaultMaxPoolSize    = 10
	minDerivedIdle        = 2
	defaultConnectTimeout = 30 * time.Second
	defaultIdleTimeout    = 10 * time.Minute
	defaultMaxLifetime    = 30 * time.Minute
	defaultLeakThreshold  = 5 * time.Minute
)

// embeddedPoolSize resolves the primary embedded pool size. Precedence:
//
//  1. in-memory target: 1 (I2; separate connections do not share state)
//  2. explicit PoolSize: used verbatim
//  3. min(availableParallelism, max(MaxPoolSize, 10))
func embeddedPoolSize(props DatabaseProperties) int {
	if isMemory(props.File) {
		return 1
	}

	if props.PoolSize >= 1 {
		return props.PoolSize
	}

	ceiling := props.MaxPoolSize
	if ceiling < defaultMaxPoolSize {
		ceiling = defaultMaxPoolSize
	}

	if n := availableParallelism(); n < ceiling {
		return n
	}

	return ceiling
}

// resolveServerMaxConns resolves the networked pool size: the Environment
// override when set, else the package default of 10.
func resolveServerMaxConns(env Environment) int32 {
	if env.MaxPoolSize >= 1 {
		return int32(env.MaxPoolSize)
	}

	return defaultMaxPoolSize
}

// resolveServerMinIdle resolves the minimum idle connection count: the
// Environment override when set (zero allowed), else a quarter of the pool
// size rounded half away from zero, floored at 2. Never above the pool size.
func resolveServerMinIdle(env Environment, maxConns int32) int32 {
	minIdle := int32(math.Round(float64(maxConns) * 0.25))
	if minIdle < minDerivedIdle {
		minIdle = minDerivedIdle
	}

	if env.MinIdle >= 0 {
		minIdle = int32(env.MinIdle)
	}

	if minIdle > maxConns {
		minIdle = maxConns
	}

	return minIdle
}

// resolveDuration resolves a timing parameter: the override when positive,
// else the given default.
func resolveDuration(override, def time.Duration) time.Duration {
	if override > 0 {
		return override
	}

	return def
}
