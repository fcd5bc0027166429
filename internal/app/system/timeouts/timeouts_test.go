package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()

	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping: got %v, want %v", got, timeouts.DefaultPing)
	}
	if got := timeouts.Fetch(); got != timeouts.DefaultFetch {
		t.Errorf("Fetch: got %v, want %v", got, timeouts.DefaultFetch)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	timeouts.Reset()
	defer timeouts.Reset()

	timeouts.Configure(timeouts.Config{Fetch: 42 * time.Second})

	cur := timeouts.Current()
	if cur.Fetch != 42*time.Second {
		t.Errorf("Fetch: got %v, want 42s", cur.Fetch)
	}
	if cur.Ping != timeouts.DefaultPing {
		t.Errorf("Ping should keep default, got %v", cur.Ping)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", ctx.Err())
	}
}
