package brc

import "testing"

func TestInfoMean(t *testing.T) {
	tests := []struct {
		sum   int64
		count int64
		want  int64
	}{
		{sum: 23, count: 2, want: 12},
		{sum: 32, count: 3, want: 11},
		{sum: 210, count: 2, want: 105},
		{sum: -32, count: 3, want: -10},
		{sum: -1, count: 2, want: 0},
		{sum: -21, count: 1, want: -21},
		{sum: 0, count: 5, want: 0},
	}
	for _, tt := range tests {
		info := Info{Sum: tt.sum, Count: tt.count}
		if got := info.Mean(); got != tt.want {
			t.Errorf("Mean(%d/%d) = %d, want %d", tt.sum, tt.count, got, tt.want)
		}
	}
}

func TestInfoUpdate(t *testing.T) {
	info := InfoFromItem(Item{name: []byte("x"), value: 5})
	for _, v := range []int32{-3, 12, 0} {
		info.Update(v)
	}
	want := Info{Min: -3, Max: 12, Sum: 14, Count: 4}
	if *info != want {
		t.Fatalf("unexpected info: got %+v want %+v", *info, want)
	}
}

func TestInfoMergeOrder(t *testing.T) {
	parts := []Info{
		{Min: -5, Max: 3, Sum: 1, Count: 3},
		{Min: 7, Max: 7, Sum: 7, Count: 1},
		{Min: -9, Max: 0, Sum: -20, Count: 4},
	}
	want := Info{Min: -9, Max: 7, Sum: -12, Count: 8}

	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {1, 2, 0}}
	for _, order := range orders {
		got := parts[order[0]]
		for _, i := range order[1:] {
			other := parts[i]
			got.Merge(&other)
		}
		if got != want {
			t.Errorf("order %v: got %+v want %+v", order, got, want)
		}
	}
}
