// Package countarray counts an array as if it was a number.
//
// A Counter holds a fixed number of digits which all range over the same
// domain [0, DomainSize()-1]. Incrementing it walks through every combination
// of digit values exactly once, least significant digit (index 0) first,
// before wrapping back to all zeros.
package countarray

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
)

// Errors
var (
	ErrInvalidDomain = errors.New("countarray: domain size must be positive")
	ErrInvalidLength = errors.New("countarray: length must not be negative")
)

// Counter contains the state of the counting
// It is not safe for concurrent use
type Counter struct {
	digits    []uint32
	domainMax uint32

	optStartAtMax bool
}

// CounterOptStartAtMax returns the option to start with every digit at its maximum value
// The first call to Inc() then wraps to all zeros and reports it
func CounterOptStartAtMax() func(*Counter) {
	return func(c *Counter) {
		c.optStartAtMax = true
	}
}

// New creates a new counter with length digits over a domain of domainSize values
// Every digit starts at 0 unless an option says otherwise
func New(domainSize uint32, length int, opts ...func(*Counter)) (c *Counter, err error) {
	// Validate
	if domainSize == 0 {
		err = fmt.Errorf("%w, but was %d", ErrInvalidDomain, domainSize)
		return
	}
	if length < 0 {
		err = fmt.Errorf("%w, but was %d", ErrInvalidLength, length)
		return
	}

	// Init
	c = &Counter{
		digits:    make([]uint32, length),
		domainMax: domainSize - 1,
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	if c.optStartAtMax {
		for i := range c.digits {
			c.digits[i] = c.domainMax
		}
	}
	return
}

// Over creates a new counter with length digits over a domain of domainSize values
func Over(domainSize uint32, length int) (*Counter, error) {
	return New(domainSize, length)
}

// Inc increments the counter by one step and returns whether it wrapped around to all zeros
func (c *Counter) Inc() bool {
	for i, d := range c.digits {
		if d == c.domainMax {
			c.digits[i] = 0
			continue
		}
		c.digits[i] = d + 1
		return false
	}
	return true
}

// Read returns the current digits without copying them
// The slice is owned by the counter: don't modify it and don't use it after the next call to Inc(), Next() or Reset()
func (c *Counter) Read() []uint32 {
	return c.digits
}

// Next increments the counter and returns the new digits
// ok is false once per cycle, when the counter wraps around. Calling Next again starts the next cycle.
// The same ownership rules as for Read() apply to ds.
func (c *Counter) Next() (ds []uint32, ok bool) {
	if c.Inc() {
		return nil, false
	}
	return c.digits, true
}

// All returns an iterator over the states produced by Next() until the end of the current cycle
func (c *Counter) All() iter.Seq[[]uint32] {
	return func(yield func([]uint32) bool) {
		for {
			ds, ok := c.Next()
			if !ok || !yield(ds) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the current digits that the caller may keep
func (c *Counter) Snapshot() []uint32 {
	ds := make([]uint32, len(c.digits))
	copy(ds, c.digits)
	return ds
}

// Reset sets every digit back to 0
func (c *Counter) Reset() {
	clear(c.digits)
}

func (c *Counter) Len() int {
	return len(c.digits)
}

func (c *Counter) DomainMax() uint32 {
	return c.domainMax
}

// DomainSize returns the number of values a digit can take
func (c *Counter) DomainSize() uint32 {
	return c.domainMax + 1
}

// CycleLength returns how many calls to Inc() a full cycle takes, i.e. DomainSize()^Len()
// ok is false if the result doesn't fit in an uint64
func (c *Counter) CycleLength() (n uint64, ok bool) {
	n = 1
	base := uint64(c.DomainSize())
	for range c.digits {
		var hi uint64
		if hi, n = bits.Mul64(n, base); hi != 0 {
			return 0, false
		}
	}
	return n, true
}

func (c *Counter) String() string {
	return fmt.Sprint(c.digits)
}
