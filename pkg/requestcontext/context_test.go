package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestValues(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		ctx := context.Background()
		assert.Empty(t, RequestID(ctx))
		assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
	})

	t.Run("injected values win", func(t *testing.T) {
		fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithTime(WithRequestID(context.Background(), "req-1"), fixed)
		assert.Equal(t, "req-1", RequestID(ctx))
		assert.Equal(t, fixed, Now(ctx))
	})
}
