package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	countarray "github.com/BenWiederhake/count-array"
)

var _ = Describe("List", func() {
	var (
		ctx context.Context
		out *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}
	})

	It("should print every state after all zeros, then done", func() {
		err := list(ctx, out, 3, 2, formatText)

		Expect(err).ToNot(HaveOccurred())
		Expect(strings.Split(strings.TrimSpace(out.String()), "\n")).To(Equal([]string{
			"Found: [1 0]",
			"Found: [2 0]",
			"Found: [0 1]",
			"Found: [1 1]",
			"Found: [2 1]",
			"Found: [0 2]",
			"Found: [1 2]",
			"Found: [2 2]",
			"Done!",
		}))
	})

	It("should write one record per state in binary format", func() {
		err := list(ctx, out, 4, 3, formatBinary)

		Expect(err).ToNot(HaveOccurred())
		Expect(out.Len()).To(Equal(countarray.RecordSize(3) * 63))
		Expect(out.Bytes()[:countarray.RecordSize(3)]).To(Equal([]byte{
			0, 0, 0, 1,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}))
	})

	It("should reject a zero domain", func() {
		err := list(ctx, out, 0, 2, formatText)

		Expect(err).To(MatchError(countarray.ErrInvalidDomain))
		Expect(out.Len()).To(BeZero())
	})

	It("should reject a domain that doesn't fit a digit", func() {
		err := list(ctx, out, 1<<32, 1, formatText)

		Expect(err).To(MatchError(countarray.ErrInvalidDomain))
	})

	It("should reject an unknown format", func() {
		err := list(ctx, out, 2, 2, "xml")

		Expect(err).To(HaveOccurred())
	})

	It("should stop when the context is canceled", func() {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := list(canceled, out, 2, 2, formatText)

		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Decode", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should print back what list wrote", func() {
		bin := &bytes.Buffer{}
		Expect(list(ctx, bin, 3, 2, formatBinary)).To(Succeed())
		text := &bytes.Buffer{}
		Expect(list(ctx, text, 3, 2, formatText)).To(Succeed())

		out := &bytes.Buffer{}
		err := decode(ctx, out, bin, 3, 2)

		Expect(err).ToNot(HaveOccurred())
		Expect(out.String() + "Done!\n").To(Equal(text.String()))
	})

	It("should reject digits out of the domain", func() {
		bin := &bytes.Buffer{}
		Expect(list(ctx, bin, 5, 1, formatBinary)).To(Succeed())

		err := decode(ctx, &bytes.Buffer{}, bin, 4, 1)

		Expect(err).To(MatchError(countarray.ErrDigitOutOfDomain))
	})

	It("should reject a truncated dump", func() {
		err := decode(ctx, &bytes.Buffer{}, bytes.NewReader([]byte{0, 0, 0, 1, 0, 0}), 3, 1)

		Expect(err).To(MatchError(countarray.ErrShortRecord))
	})

	It("should read dumps from files", func() {
		path := filepath.Join(GinkgoT().TempDir(), "dump.bin")
		bin := &bytes.Buffer{}
		Expect(list(ctx, bin, 2, 2, formatBinary)).To(Succeed())
		Expect(os.WriteFile(path, bin.Bytes(), 0o600)).To(Succeed())

		out := &bytes.Buffer{}
		err := decodeFile(ctx, out, path, 2, 2)

		Expect(err).ToNot(HaveOccurred())
		Expect(out.String()).To(Equal("Found: [1 0]\nFound: [0 1]\nFound: [1 1]\n"))
	})

	It("should require an input path", func() {
		Expect(decodeFile(ctx, &bytes.Buffer{}, "", 2, 2)).ToNot(Succeed())
	})
})

var _ = Describe("Bench", func() {
	It("should count full cycles of the expected length", func() {
		for _, bc := range benchCases {
			r, err := runBenchCase(context.Background(), bc, 2)

			Expect(err).ToNot(HaveOccurred())
			Expect(r.runs).To(Equal(2))
			Expect(r.nsPerStep()).To(BeNumerically(">=", 0))
		}
	})

	It("should report a cycle of the wrong length", func() {
		_, err := runBenchCase(context.Background(), benchCase{domainSize: 9, length: 5, steps: 100000}, 1)

		Expect(err).To(MatchError(ContainSubstring("took 59049 steps")))
	})

	It("should print one line per case", func() {
		out := &bytes.Buffer{}

		Expect(bench(context.Background(), out, 1)).To(Succeed())
		Expect(strings.Count(out.String(), "\n")).To(Equal(len(benchCases)))
	})

	It("should reject a non positive number of runs", func() {
		Expect(bench(context.Background(), &bytes.Buffer{}, 0)).ToNot(Succeed())
	})
})
