package idgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"socialrobot-be/pkg/proquint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCombinesRandomAndTime(t *testing.T) {
	g := Generator{
		Now:    func() time.Time { return time.Unix(1, 0) },
		Random: func() uint32 { return 0x7F000000 },
	}

	assert.Equal(t, "lusab-babad", g.Generate())
}

func TestGenerateWrapsAround(t *testing.T) {
	g := Generator{
		Now:    func() time.Time { return time.Unix(2, 0) },
		Random: func() uint32 { return 0xFFFFFFFF },
	}

	// 0xFFFFFFFF + 2 wraps to 1
	assert.Equal(t, proquint.EncodeUint32(1), g.Generate())
}

func TestGenerateProducesValidProquints(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := Generate()
		assert.Len(t, id, 11)
		assert.True(t, proquint.Valid(id), id)
	}
}

func TestAllocateReturnsFirstFreeId(t *testing.T) {
	calls := 0
	exists := func(ctx context.Context, id string) (bool, error) {
		calls++
		return calls < 3, nil
	}

	id, err := Generator{}.Allocate(context.Background(), exists, 10)
	require.NoError(t, err)
	assert.True(t, proquint.Valid(id))
	assert.Equal(t, 3, calls)
}

func TestAllocateExhaustsAfterExactBound(t *testing.T) {
	calls := 0
	alwaysTaken := func(ctx context.Context, id string) (bool, error) {
		calls++
		return true, nil
	}

	id, err := Generator{}.Allocate(context.Background(), alwaysTaken, DefaultMaxAttempts)
	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, DefaultMaxAttempts, calls)
}

func TestAllocateDefaultsBoundWhenNonPositive(t *testing.T) {
	calls := 0
	alwaysTaken := func(ctx context.Context, id string) (bool, error) {
		calls++
		return true, nil
	}

	_, err := Generator{}.Allocate(context.Background(), alwaysTaken, 0)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, DefaultMaxAttempts, calls)
}

func TestAllocateStopsOnLookupError(t *testing.T) {
	storeDown := errors.New("connection refused")
	calls := 0
	exists := func(ctx context.Context, id string) (bool, error) {
		calls++
		return false, storeDown
	}

	_, err := Generator{}.Allocate(context.Background(), exists, 10)
	assert.ErrorIs(t, err, storeDown)
	assert.NotErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, calls)
}

func TestAllocateHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generator{}.Allocate(ctx, func(context.Context, string) (bool, error) {
		t.Fatal("exists must not be called after cancellation")
		return false, nil
	}, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
