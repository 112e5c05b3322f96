package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ewilliams-labs/moodreel/internal/adapters/repotest"
)

// newTestStore connects to REDIS_URL and namespaces keys per test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		t.Skip("Skipping redis test: REDIS_URL not set")
	}
	ctx := context.Background()
	prefix := fmt.Sprintf("moodreel-test:%d:", time.Now().UnixNano())

	s, err := NewStore(ctx, addr, prefix)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() {
		keys, _ := s.rdb.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			s.rdb.Del(ctx, keys...)
		}
		_ = s.Close()
	})
	return s
}

func TestStore_SessionRepository(t *testing.T) {
	repotest.Run(t, newTestStore(t))
}

func TestStore_Keys(t *testing.T) {
	s := NewStoreWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "")
	defer s.Close()

	if got := s.key("versions", "data"); got != "moodreel:versions:data" {
		t.Errorf("key: got %q", got)
	}
}

func TestNewStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := NewStore(ctx, "127.0.0.1:1", ""); err == nil {
		t.Fatal("expected ping error for unreachable server")
	}
}
