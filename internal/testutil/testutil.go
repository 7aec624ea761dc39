// Package testutil provides shared helpers for tests that need external
// infrastructure (Redis) or canned domain data.
package testutil

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mergington/activities-ui/internal/domain/model"
)

// TestingTB is the subset of testing.TB these helpers need; it covers both
// *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// TestRedisAddr returns the address of the test Redis instance.
// Defaults to localhost:6379; CI environments set TEST_REDIS_ADDR explicitly.
func TestRedisAddr() string {
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// requireRedis reports whether tests must fail (rather than skip) when Redis
// is unavailable. Set TEST_REQUIRE_REDIS=1 in CI to catch silent skips.
func requireRedis() bool {
	v := strings.ToLower(os.Getenv("TEST_REQUIRE_REDIS"))
	return v == "1" || v == "true" || v == "yes"
}

// SetupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr := TestRedisAddr()
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   1, // keep test keys out of the default DB
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		if requireRedis() {
			t.Fatalf("Redis not available for testing at %s: %v", addr, err)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	// Clean up any existing test data
	client.FlushDB(ctx)

	return client
}

// SampleActivities returns a small activity snapshot in backend order,
// mirroring the shapes the backend serves.
func SampleActivities() model.ActivityList {
	return model.ActivityList{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "GitHub Skills",
			Description:     "Learn practical coding and collaboration skills through GitHub",
			Schedule:        "Mondays, 3:30 PM - 4:30 PM",
			MaxParticipants: 25,
			Participants:    []string{},
		},
	}
}
