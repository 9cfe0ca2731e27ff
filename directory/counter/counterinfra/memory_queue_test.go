package counterinfra

import (
	"context"
	"testing"
	"time"

	"github.com/job360/directory/directory/counter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueueRoundTrip(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()

	first := counter.Adjustment{
		Entity: counter.EntityCategory,
		ID:     "cat-1",
		Delta:  1,
		Reason: "increment failed",
		At:     time.Now().UTC(),
	}
	second := counter.Adjustment{Entity: counter.EntityCountry, ID: "cty-1", Delta: -1}

	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	size, err := q.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)

	got, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first, *got)

	got, err = q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second, *got)
}

func TestMemoryQueueDequeueEmptyReturnsNil(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()

	got, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryQueueClear(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()

	require.NoError(t, q.Enqueue(ctx, counter.Adjustment{Entity: counter.EntityCategory, ID: "x", Delta: 1}))
	require.NoError(t, q.Clear(ctx))

	size, err := q.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}
