package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/asticode/go-astikit"

	countarray "github.com/BenWiederhake/count-array"
)

// Formats
const (
	formatBinary = "binary"
	formatText   = "text"
)

func newCounter(domainSize uint, length int) (*countarray.Counter, error) {
	if domainSize > math.MaxUint32 {
		return nil, fmt.Errorf("count-array-probe: domain size %d is too big: %w", domainSize, countarray.ErrInvalidDomain)
	}
	c, err := countarray.New(uint32(domainSize), length)
	if err != nil {
		return nil, fmt.Errorf("count-array-probe: creating counter failed: %w", err)
	}
	return c, nil
}

// list prints every state of a cycle, starting after the all zeros state
func list(ctx context.Context, w io.Writer, domainSize uint, length int, format string) (err error) {
	// Create counter
	var c *countarray.Counter
	if c, err = newCounter(domainSize, length); err != nil {
		return
	}

	// Create writer
	var write func(ds []uint32) error
	switch format {
	case formatText:
		write = func(ds []uint32) (err error) {
			_, err = fmt.Fprintf(w, "Found: %v\n", ds)
			return
		}
	case formatBinary:
		bw := astikit.NewBitsWriter(astikit.BitsWriterOptions{Writer: w})
		write = func(ds []uint32) (err error) {
			_, err = countarray.WriteDigits(bw, ds)
			return
		}
	default:
		return fmt.Errorf("count-array-probe: unknown format %q", format)
	}

	// Loop through states
	for ds := range c.All() {
		if err = ctx.Err(); err != nil {
			return
		}
		if err = write(ds); err != nil {
			return fmt.Errorf("count-array-probe: writing %v failed: %w", ds, err)
		}
	}

	if format == formatText {
		_, err = fmt.Fprintln(w, "Done!")
	}
	return
}
