package counter

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countersense/internal/perception"
)

func call(name string, args map[string]string) perception.Call {
	if args == nil {
		args = map[string]string{}
	}
	return perception.Call{Name: name, Args: args}
}

func TestApply(t *testing.T) {
	c := New()

	v, err := c.Apply(call(perception.OpIncrement, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = c.Apply(call(perception.OpSet, map[string]string{perception.ArgNumber: "42"}))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = c.Apply(call(perception.OpDecrement, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(41), v)

	v, err = c.Apply(call(perception.OpReset, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestApplyInvalidValue(t *testing.T) {
	c := New()
	_, _ = c.Apply(call(perception.OpSet, map[string]string{perception.ArgNumber: "5"}))

	for _, raw := range []string{"", "abc", "4.5", "1,000"} {
		_, err := c.Apply(call(perception.OpSet, map[string]string{perception.ArgNumber: raw}))
		assert.True(t, errors.Is(err, ErrInvalidValue), "number %q", raw)
	}

	// A rejected set leaves the value untouched.
	assert.Equal(t, int64(5), c.Value())
}

func TestApplyUnknownOperation(t *testing.T) {
	c := New()
	_, err := c.Apply(call("frobnicate", nil))
	assert.True(t, errors.Is(err, ErrUnknownOperation))
	assert.Equal(t, int64(0), c.Value())
}

func TestApplyNegativeSet(t *testing.T) {
	c := New()
	v, err := c.Apply(call(perception.OpSet, map[string]string{perception.ArgNumber: "-7"}))
	require.NoError(t, err)
	assert.Equal(t, int64(-7), v)
}

func TestApplyConcurrent(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Apply(call(perception.OpIncrement, nil))
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), c.Value())
}
