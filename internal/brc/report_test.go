package brc

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

func TestReportRounding(t *testing.T) {
	store := NewInfoStore()
	store.Update(Item{name: []byte("k"), value: 12})
	store.Update(Item{name: []byte("k"), value: 11})

	want := "{k=1.1/1.2/1.2}\n"
	if got := Report(store); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestAppendScaled(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{-5, "-0.5"},
		{123, "12.3"},
		{-999, "-99.9"},
		{10, "1.0"},
	}
	for _, tt := range tests {
		if got := string(appendScaled(nil, tt.v)); got != tt.want {
			t.Errorf("appendScaled(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	if got := Report(NewInfoStore()); got != "{}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestReportSamples(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "*.txt"))
	if err != nil {
		t.Fatalf("failed to list samples: %v", err)
	}
	if len(inputs) == 0 {
		t.Fatalf("no samples found")
	}

	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), ".txt")
		t.Run(name, func(t *testing.T) {
			buf, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("failed to read input: %v", err)
			}
			expected, err := os.ReadFile(strings.TrimSuffix(input, ".txt") + ".out")
			if err != nil {
				t.Fatalf("failed to read expected output: %v", err)
			}

			for _, parts := range []int{1, 2, 3, 16} {
				actual, err := Aggregate(context.Background(), buf, parts)
				if err != nil {
					t.Fatalf("parts %d: failed to aggregate: %v", parts, err)
				}
				if actual != string(expected) {
					t.Errorf("parts %d: report mismatch:\n%v", parts,
						diff.LineDiff(string(expected), actual))
				}
			}
		})
	}
}
