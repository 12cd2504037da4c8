//go:build unit

package shared_test

import (
	"context"
	"testing"
	"time"

	"gourmet-gateway/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestJoin2(t *testing.T) {
	t.Run("returns both results", func(t *testing.T) {
		a, b := shared.Join2(context.Background(),
			func(context.Context) int { return 41 },
			func(context.Context) string { return "ok" },
		)
		assert.Equal(t, 41, a)
		assert.Equal(t, "ok", b)
	})

	t.Run("legs run concurrently", func(t *testing.T) {
		start := time.Now()
		shared.Join2(context.Background(),
			func(context.Context) struct{} { time.Sleep(50 * time.Millisecond); return struct{}{} },
			func(context.Context) struct{} { time.Sleep(50 * time.Millisecond); return struct{}{} },
		)
		assert.Less(t, time.Since(start), 95*time.Millisecond)
	})

	t.Run("a slow leg does not lose the fast leg's result", func(t *testing.T) {
		a, b := shared.Join2(context.Background(),
			func(context.Context) string { return "fast" },
			func(context.Context) string { time.Sleep(20 * time.Millisecond); return "slow" },
		)
		assert.Equal(t, "fast", a)
		assert.Equal(t, "slow", b)
	})
}
