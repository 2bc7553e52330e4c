package main

import (
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mnightingale/bashnul"
)

const (
	exitUsage   = 42
	exitFailure = 23
)

const usage = "Usage: %s -d|-e\n" +
	"\tescapes (-e) or unescapes (-d) 00 into 01 02 and 01 into 01 03\n" +
	"\tneeds to run under LC_ALL=C"

func main() {
	// Report EPIPE from Write instead of dying on SIGPIPE, so that a reader
	// going away is handled like any other closed sink.
	signal.Ignore(syscall.SIGPIPE)

	os.Exit(run(os.Args, os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	codec, chunkSize, ok := parseArgs(args)
	if !ok {
		name := "bashnul"
		if len(args) > 0 {
			name = filepath.Base(args[0])
		}
		logger.Printf(usage, name)
		return exitUsage
	}

	if getenv("LC_ALL") != "C" {
		logger.Print("please set LC_ALL=C")
		return exitFailure
	}

	s := bashnul.NewStream(stdin, stdout, bashnul.WithChunkSize(chunkSize))
	if _, err := s.Run(codec); err != nil {
		// The sink is gone, so there is nobody left to tell.
		if !errors.Is(err, bashnul.ErrSinkClosed) {
			logger.Print(err)
		}
		return exitFailure
	}

	return 0
}

// parseArgs accepts exactly one argument, -e or -d. Decoding never grows its
// input, so it reads twice as much per chunk as encoding does.
func parseArgs(args []string) (bashnul.Codec, int, bool) {
	if len(args) != 2 {
		return nil, 0, false
	}

	switch args[1] {
	case "-e":
		return bashnul.NewEncoder(), bashnul.DefaultChunkSize, true
	case "-d":
		return bashnul.NewDecoder(), 2 * bashnul.DefaultChunkSize, true
	default:
		return nil, 0, false
	}
}
