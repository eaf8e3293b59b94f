package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	assert.False(t, now.Before(before))
	assert.GreaterOrEqual(t, clock.Since(before), time.Duration(0))
}

func TestMockClock_Advance(t *testing.T) {
	clock := NewMockClockFromString("2025-01-01T08:00:00Z")
	start := clock.Now()

	clock.Advance(1500 * time.Millisecond)

	assert.Equal(t, "2025-01-01T08:00:01Z", clock.Now().Truncate(time.Second).Format(time.RFC3339))
	assert.Equal(t, 1500*time.Millisecond, clock.Since(start))
}

func TestMockClock_ConcurrentAdvance(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clock.Advance(time.Millisecond)
			_ = clock.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50*time.Millisecond, clock.Since(time.Unix(0, 0)))
}

func TestNewMockClockFromString_Panic(t *testing.T) {
	assert.Panics(t, func() { NewMockClockFromString("yesterday") })
}

func TestMillis(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{999 * time.Microsecond, "0"},
		{42 * time.Millisecond, "42"},
		{2*time.Second + 5*time.Millisecond, "2005"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Millis(tt.in), tt.in.String())
	}
}
