package countarray

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/asticode/go-astikit"
)

const digitBytesSize = 4

// Errors
var (
	ErrShortRecord      = errors.New("countarray: record is too short")
	ErrDigitOutOfDomain = errors.New("countarray: digit is out of domain")
)

// RecordSize returns the size in bytes of a record holding length digits
func RecordSize(length int) int {
	return length * digitBytesSize
}

// WriteDigits writes digits as a record of big endian uint32 words
func WriteDigits(w *astikit.BitsWriter, ds []uint32) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	for _, d := range ds {
		b.Write(d)
	}

	return RecordSize(len(ds)), b.Err()
}

// ParseDigits parses a record of length digits
func ParseDigits(i *astikit.BytesIterator, length int) (ds []uint32, err error) {
	// Make sure the whole record is there
	if i.Len()-i.Offset() < RecordSize(length) {
		err = fmt.Errorf("%w: %d bytes left, %d needed", ErrShortRecord, i.Len()-i.Offset(), RecordSize(length))
		return
	}

	ds = make([]uint32, length)
	for idx := range ds {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(digitBytesSize); err != nil || len(bs) < digitBytesSize {
			err = fmt.Errorf("countarray: fetching digit %d failed: %w", idx, errors.Join(ErrShortRecord, err))
			return nil, err
		}
		ds[idx] = binary.BigEndian.Uint32(bs)
	}
	return
}

// ParseDigitsWithin parses a record of length digits and checks every digit is lower than domainSize
func ParseDigitsWithin(i *astikit.BytesIterator, length int, domainSize uint32) (ds []uint32, err error) {
	if ds, err = ParseDigits(i, length); err != nil {
		return
	}

	for idx, d := range ds {
		if d >= domainSize {
			return nil, fmt.Errorf("%w: digit %d is %d, domain size is %d", ErrDigitOutOfDomain, idx, d, domainSize)
		}
	}
	return
}
