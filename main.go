package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/weirdgiraffe/stationstats/internal/brc"
	"github.com/weirdgiraffe/stationstats/internal/source"
)

const defaultFilename = "measurements.txt"

// startProfile is replaced in builds with the profile tag.
var startProfile = func() (stop func()) {
	return func() {}
}

func Solve(filename string, w io.Writer) error {
	src, err := source.Open(filename)
	if err != nil {
		return err
	}
	defer src.Close()

	workers := runtime.GOMAXPROCS(0)
	report, err := brc.Aggregate(context.Background(), src.Bytes(), workers)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, report)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func main() {
	filename := defaultFilename
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	stop := startProfile()
	err := Solve(filename, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to solve: %v\n", err)
		os.Exit(1)
	}
}
