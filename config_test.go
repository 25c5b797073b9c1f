package dbpool

import (
	"strings"
	"testing"
	"time"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestCaptureEnvironment_FullSnapshot(t *testing.T) {
	t.Parallel()

	env, err := CaptureEnvironment(mapLookup(map[string]string{
		EnvServerURL:       "postgres://app@db.example.com/app",
		EnvServerUser:      "app",
		EnvServerPassword:  "hunter2",
		EnvMaxPoolSize:     "20",
		EnvMinIdle:         "4",
		EnvConnectTimeout:  "30000",
		EnvIdleTimeout:     "600000",
		EnvMaxLifetime:     "1800000",
		EnvLeakThreshold:   "300000",
		EnvDevelopmentMode: "true",
	}))
	if err != nil {
		t.Fatalf("CaptureEnvironment error: %v", err)
	}

	if env.ServerURL != "postgres://app@db.example.com/app" {
		t.Fatalf("ServerURL=%q", env.ServerURL)
	}
	if env.ServerUser != "app" || env.ServerPassword != "hunter2" {
		t.Fatalf("credentials=%q/%q", env.ServerUser, env.ServerPassword)
	}
	if env.MaxPoolSize != 20 || env.MinIdle != 4 {
		t.Fatalf("sizing=%d/%d", env.MaxPoolSize, env.MinIdle)
	}
	if env.ConnectTimeout != 30*time.Second {
		t.Fatalf("ConnectTimeout=%s", env.ConnectTimeout)
	}
	if env.IdleTimeout != 10*time.Minute {
		t.Fatalf("IdleTimeout=%s", env.IdleTimeout)
	}
	if env.MaxLifetime != 30*time.Minute {
		t.Fatalf("MaxLifetime=%s", env.MaxLifetime)
	}
	if env.LeakThreshold != 5*time.Minute {
		t.Fatalf("LeakThreshold=%s", env.LeakThreshold)
	}
	if !env.DevelopmentMode {
		t.Fatal("expected DevelopmentMode")
	}
}

func TestCaptureEnvironment_AbsentKeysLeaveUnsetSentinels(t *testing.T) {
	t.Parallel()

	env, err := CaptureEnvironment(mapLookup(nil))
	if err != nil {
		t.Fatalf("CaptureEnvironment error: %v", err)
	}

	if env.ServerURL != "" {
		t.Fatalf("ServerURL=%q, want empty", env.ServerURL)
	}
	if env.MaxPoolSize != 0 {
		t.Fatalf("MaxPoolSize=%d, want 0", env.MaxPoolSize)
	}
	if env.MinIdle != -1 {
		t.Fatalf("MinIdle=%d, want -1 (unset)", env.MinIdle)
	}
	if env.ConnectTimeout != 0 || env.IdleTimeout != 0 || env.MaxLifetime != 0 || env.LeakThreshold != 0 {
		t.Fatal("expected zero durations for absent keys")
	}
	if env.DevelopmentMode {
		t.Fatal("DevelopmentMode must default off")
	}
}

func TestCaptureEnvironment_BlankValuesTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	env, err := CaptureEnvironment(mapLookup(map[string]string{
		EnvServerURL:   "   ",
		EnvMaxPoolSize: "",
	}))
	if err != nil {
		t.Fatalf("CaptureEnvironment error: %v", err)
	}
	if env.ServerURL != "" || env.MaxPoolSize != 0 {
		t.Fatalf("env=%+v, want blank values ignored", env)
	}
}

func TestCaptureEnvironment_InvalidIntegerFailsFast(t *testing.T) {
	t.Parallel()

	_, err := CaptureEnvironment(mapLookup(map[string]string{EnvMaxPoolSize: "ten"}))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), EnvMaxPoolSize) {
		t.Fatalf("error %q should name the offending key", err)
	}
}

func TestCaptureEnvironment_NegativeDurationFailsFast(t *testing.T) {
	t.Parallel()

	_, err := CaptureEnvironment(mapLookup(map[string]string{EnvIdleTimeout: "-5"}))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestCaptureEnvironment_InvalidBooleanFailsFast(t *testing.T) {
	t.Parallel()

	_, err := CaptureEnvironment(mapLookup(map[string]string{EnvDevelopmentMode: "yep"}))
	if err == nil {
		t.Fatal("expected error")
	}
}
