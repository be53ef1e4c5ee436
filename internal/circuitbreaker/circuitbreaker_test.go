package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newTestBreaker(timeout time.Duration) *CircuitBreaker {
	return New(Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          timeout,
		Name:             "test",
	})
}

func TestExecute_Success(t *testing.T) {
	cb := newTestBreaker(time.Second)

	err := cb.Execute(context.Background(), func() error { return nil })

	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_OpensAfterThreshold(t *testing.T) {
	cb := newTestBreaker(time.Second)

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func() error { return errBoom })
		assert.ErrorIs(t, err, errBoom)
	}

	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())

	// Open circuit rejects without calling fn.
	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestExecute_FailureCountResetsOnSuccess(t *testing.T) {
	cb := newTestBreaker(time.Second)

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}

	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_HalfOpenRecovery(t *testing.T) {
	cb := newTestBreaker(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	// First success transitions to half-open, second closes the circuit.
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_HalfOpenFailureReopens(t *testing.T) {
	cb := newTestBreaker(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}
	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return errBoom })
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateOpen, cb.State())
}

func TestGetStats(t *testing.T) {
	cb := newTestBreaker(time.Second)

	_ = cb.Execute(context.Background(), func() error { return errBoom })

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, stats.LastFailure.IsZero())
}
