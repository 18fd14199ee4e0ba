// README: Tests for the Redis weather cache.
package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// countingService records how often the wrapped provider is hit.
type countingService struct {
	reading *Reading
	err     error
	calls   int
}

func (s *countingService) Current(ctx context.Context, location string) (*Reading, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.reading, nil
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCacheReadThrough(t *testing.T) {
	inner := &countingService{reading: &Reading{Location: "Paris", TempF: 64}}
	c := NewCache(inner, newTestRedis(t), nil)
	ctx := context.Background()

	first, err := c.Current(ctx, "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Current(ctx, "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("provider called %d times, want 1", inner.calls)
	}
	if first.Location != second.Location || first.TempF != second.TempF {
		t.Errorf("cached reading differs: %+v vs %+v", first, second)
	}
}

// Location keys are case-insensitive: "Paris" and "paris" share an entry.
func TestCacheNormalizesLocation(t *testing.T) {
	inner := &countingService{reading: &Reading{Location: "Paris"}}
	c := NewCache(inner, newTestRedis(t), nil)
	ctx := context.Background()

	if _, err := c.Current(ctx, "Paris"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Current(ctx, "  paris "); err != nil {
		t.Fatal(err)
	}
	if inner.calls != 1 {
		t.Fatalf("provider called %d times, want 1", inner.calls)
	}
}

// Provider errors are not cached.
func TestCacheDoesNotCacheErrors(t *testing.T) {
	inner := &countingService{err: errors.New("upstream down")}
	c := NewCache(inner, newTestRedis(t), nil)
	ctx := context.Background()

	if _, err := c.Current(ctx, "Paris"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := c.Current(ctx, "Paris"); err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 2 {
		t.Fatalf("provider called %d times, want 2", inner.calls)
	}
}
