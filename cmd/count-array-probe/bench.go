package main

import (
	"context"
	"fmt"
	"io"
	"time"
)

type benchCase struct {
	domainSize uint
	length     int
	steps      uint64
}

var benchCases = []benchCase{
	{domainSize: 10, length: 5, steps: 100000},
	{domainSize: 32, length: 2, steps: 1024},
	{domainSize: 3, length: 3, steps: 27},
}

type benchResult struct {
	benchCase
	runs    int
	elapsed time.Duration
}

func (r benchResult) nsPerStep() float64 {
	return float64(r.elapsed.Nanoseconds()) / float64(r.steps*uint64(r.runs))
}

// runBenchCase counts through runs full cycles and checks each one takes the expected number of steps
func runBenchCase(ctx context.Context, bc benchCase, runs int) (r benchResult, err error) {
	r = benchResult{benchCase: bc, runs: runs}
	start := time.Now()
	for run := 0; run < runs; run++ {
		if err = ctx.Err(); err != nil {
			return
		}

		c, errC := newCounter(bc.domainSize, bc.length)
		if errC != nil {
			err = errC
			return
		}

		var n uint64 = 1
		for !c.Inc() {
			n++
		}

		if cl, _ := c.CycleLength(); n != bc.steps || n != cl {
			err = fmt.Errorf("count-array-probe: domain size %d, length %d took %d steps, expected %d", bc.domainSize, bc.length, n, bc.steps)
			return
		}
	}
	r.elapsed = time.Since(start)
	return
}

func bench(ctx context.Context, w io.Writer, runs int) error {
	if runs <= 0 {
		return fmt.Errorf("count-array-probe: number of runs must be positive, but was %d", runs)
	}

	for _, bc := range benchCases {
		r, err := runBenchCase(ctx, bc, runs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "domain=%d length=%d steps=%d runs=%d elapsed=%s ns/step=%.2f\n", r.domainSize, r.length, r.steps, r.runs, r.elapsed, r.nsPerStep())
	}
	return nil
}
