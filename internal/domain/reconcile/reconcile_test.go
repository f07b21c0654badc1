package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRecorder struct {
	fallbacks map[string]int
	reads     map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{fallbacks: map[string]int{}, reads: map[string]int{}}
}

func (c *countingRecorder) Fallback(op string)     { c.fallbacks[op]++ }
func (c *countingRecorder) ReadDegraded(op string) { c.reads[op]++ }

var errBackend = errors.New("backend down")

func TestPolicies_Defaults(t *testing.T) {
	p := DefaultPolicies()
	assert.Equal(t, PolicyDegraded, p.For(OpCompleteReminder))
	assert.Equal(t, PolicyStrict, p.For(OpCreateConsultation))
	assert.Equal(t, PolicyStrict, p.For(OpCreatePet))
	assert.Equal(t, PolicyStrict, p.For(OpDeleteReminder))

	q := p.With(OpUpdateReminder, PolicyDegraded)
	assert.Equal(t, PolicyDegraded, q.For(OpUpdateReminder))
	assert.Equal(t, PolicyStrict, p.For(OpUpdateReminder), "With must not mutate the receiver")
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, PolicyDegraded, ParsePolicy("Degraded"))
	assert.Equal(t, PolicyDegraded, ParsePolicy("degraded-tolerant"))
	assert.Equal(t, PolicyStrict, ParsePolicy(""))
	assert.Equal(t, PolicyStrict, ParsePolicy("whatever"))
}

func TestExecutor_StrictPropagatesUnchanged(t *testing.T) {
	rec := newCountingRecorder()
	e := NewExecutor(DefaultPolicies(), zap.NewNop(), rec)

	called := false
	w, err := e.Mutate(context.Background(), OpCreateReminder, "r1",
		func(context.Context) error { return errBackend },
		func() { called = true },
	)
	require.Nil(t, w)
	assert.Same(t, errBackend, err)
	assert.False(t, called)
	assert.Empty(t, rec.fallbacks)
}

func TestExecutor_DegradedRunsFallback(t *testing.T) {
	rec := newCountingRecorder()
	e := NewExecutor(nil, nil, rec)

	called := false
	w, err := e.Mutate(context.Background(), OpCompleteReminder, "r1",
		func(context.Context) error { return errBackend },
		func() { called = true },
	)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, called)
	assert.Equal(t, OpCompleteReminder, w.Operation)
	assert.Equal(t, "r1", w.EntityID)
	assert.ErrorIs(t, w, errBackend)
	assert.Equal(t, 1, rec.fallbacks[string(OpCompleteReminder)])
}

func TestExecutor_DegradedWithoutFallbackIsStrict(t *testing.T) {
	e := NewExecutor(nil, nil, nil)
	w, err := e.Mutate(context.Background(), OpCompleteReminder, "r1",
		func(context.Context) error { return errBackend }, nil)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, errBackend)
}

func TestExecutor_SuccessSkipsFallback(t *testing.T) {
	e := NewExecutor(nil, nil, nil)
	called := false
	w, err := e.Mutate(context.Background(), OpCompleteReminder, "r1",
		func(context.Context) error { return nil },
		func() { called = true },
	)
	assert.NoError(t, err)
	assert.Nil(t, w)
	assert.False(t, called)
}

func TestReadAll(t *testing.T) {
	rec := newCountingRecorder()
	e := NewExecutor(nil, nil, rec)

	items, ok := ReadAll(context.Background(), e, "pets.list", func(context.Context) ([]string, error) {
		return nil, errBackend
	})
	assert.False(t, ok)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 1, rec.reads["pets.list"])

	items, ok = ReadAll(context.Background(), e, "pets.list", func(context.Context) ([]string, error) {
		return nil, nil
	})
	assert.True(t, ok)
	assert.NotNil(t, items)

	items, ok = ReadAll(context.Background(), e, "pets.list", func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestInFlight(t *testing.T) {
	f := NewInFlight()

	release, ok := f.Acquire("r1")
	require.True(t, ok)
	assert.True(t, f.Has("r1"))

	_, ok = f.Acquire("r1")
	assert.False(t, ok)

	other, ok := f.Acquire("r2")
	require.True(t, ok)
	other()

	release()
	release()
	assert.False(t, f.Has("r1"))

	_, ok = f.Acquire("r1")
	assert.True(t, ok)
}
