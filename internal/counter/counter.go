// Package counter executes resolved calls against an integer counter. This
// is the downstream collaborator of the perception pipeline: numeric
// validation of set_counter's argument happens here, at execution time, never
// inside the pipeline.
package counter

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"countersense/internal/perception"
)

// ErrUnknownOperation is returned for call names outside the canonical four.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrInvalidValue is returned when set_counter's number argument does not
// parse as an integer.
var ErrInvalidValue = errors.New("invalid value")

// Counter is a mutex-guarded integer counter.
type Counter struct {
	mu    sync.Mutex
	value int64
}

// New returns a counter starting at zero.
func New() *Counter {
	return &Counter{}
}

// Value returns the current counter value.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Apply executes a resolved call and returns the new value.
func (c *Counter) Apply(call perception.Call) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch call.Name {
	case perception.OpIncrement:
		c.value++
	case perception.OpDecrement:
		c.value--
	case perception.OpReset:
		c.value = 0
	case perception.OpSet:
		raw := call.Args[perception.ArgNumber]
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.value, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
		}
		c.value = n
	default:
		return c.value, fmt.Errorf("%w: %q", ErrUnknownOperation, call.Name)
	}
	return c.value, nil
}
