package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/asticode/go-astikit"

	countarray "github.com/BenWiederhake/count-array"
)

func decodeFile(ctx context.Context, w io.Writer, path string, domainSize uint, length int) (err error) {
	if path == "" {
		return fmt.Errorf("count-array-probe: use -i to indicate an input path")
	}

	var f *os.File
	if f, err = os.Open(path); err != nil {
		return fmt.Errorf("count-array-probe: opening %s failed: %w", path, err)
	}
	defer f.Close()

	return decode(ctx, w, f, domainSize, length)
}

// decode prints every record of a dump written by list in binary format
func decode(ctx context.Context, w io.Writer, r io.Reader, domainSize uint, length int) (err error) {
	// Validate the layout the same way list does
	var c *countarray.Counter
	if c, err = newCounter(domainSize, length); err != nil {
		return
	}
	if c.Len() == 0 {
		return fmt.Errorf("count-array-probe: records of length 0 can't be decoded")
	}

	var bs []byte
	if bs, err = io.ReadAll(r); err != nil {
		return fmt.Errorf("count-array-probe: reading input failed: %w", err)
	}

	i := astikit.NewBytesIterator(bs)
	for i.HasBytesLeft() {
		if err = ctx.Err(); err != nil {
			return
		}

		var ds []uint32
		if ds, err = countarray.ParseDigitsWithin(i, c.Len(), c.DomainSize()); err != nil {
			return fmt.Errorf("count-array-probe: parsing record at offset %d failed: %w", i.Offset(), err)
		}

		if _, err = fmt.Fprintf(w, "Found: %v\n", ds); err != nil {
			return
		}
	}
	return
}
