package async

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestMapPreservesOrder(t *testing.T) {
	pool := NewPool(func(_ context.Context, path string) (string, error) {
		return strings.ToUpper(path), nil
	}, slog.New(slog.DiscardHandler), WithWorkers(3))

	paths := []string{"a", "b", "c", "d", "e"}
	results := pool.Map(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d path = %q, want %q", i, res.Path, paths[i])
		}
		if res.Text != strings.ToUpper(paths[i]) {
			t.Errorf("result %d text = %q", i, res.Text)
		}
	}
}

func TestMapCollectsErrors(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool(func(_ context.Context, path string) (string, error) {
		if path == "bad" {
			return "", boom
		}
		return path, nil
	}, slog.New(slog.DiscardHandler), WithWorkers(2))

	results := pool.Map(context.Background(), []string{"ok", "bad", "ok2"})
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, boom) {
		t.Errorf("results[1].Err = %v, want boom", results[1].Err)
	}
}

func TestMapCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(func(ctx context.Context, path string) (string, error) {
		return path, ctx.Err()
	}, slog.New(slog.DiscardHandler), WithWorkers(1))

	results := pool.Map(ctx, []string{"a", "b"})
	for i, res := range results {
		if res.Err == nil {
			t.Errorf("result %d: expected error after cancellation", i)
		}
	}
}
