package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/asticode/go-astikit"
	"github.com/pkg/profile"
)

// Flags
var (
	ctx, cancel     = context.WithCancel(context.Background())
	cpuProfiling    = flag.Bool("cp", false, "if yes, cpu profiling is enabled")
	domainSize      = flag.Uint("d", 3, "the number of values each digit can take")
	format          = flag.String("f", formatText, "the output format (text, binary)")
	inputPath       = flag.String("i", "", "the input path")
	length          = flag.Int("l", 2, "the number of digits")
	memoryProfiling = flag.Bool("mp", false, "if yes, memory profiling is enabled")
	runs            = flag.Int("n", 10, "the number of runs per bench case")
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() (err error) {
	// Init
	cmd := astikit.FlagCmd()
	flag.Parse()

	// Handle signals
	handleSignals()

	// Start profiling
	if *cpuProfiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memoryProfiling {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// Buffer output
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	// Switch on command
	switch cmd {
	case "bench":
		err = bench(ctx, out, *runs)
	case "decode":
		err = decodeFile(ctx, out, *inputPath, *domainSize, *length)
	case "list", "":
		err = list(ctx, out, *domainSize, *length, *format)
	default:
		err = fmt.Errorf("count-array-probe: unknown command %q", cmd)
	}
	return
}

func handleSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGABRT, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	go func() {
		s := <-ch
		log.Printf("Received signal %s\n", s)
		cancel()
	}()
}
