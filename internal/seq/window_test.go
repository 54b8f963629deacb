package seq

import (
	"errors"
	"math"
	"testing"
)

func TestWindowedGC(t *testing.T) {
	windows, err := WindowedGC("ACGTACGTA", 4)
	if err != nil {
		t.Fatalf("WindowedGC returned error: %v", err)
	}
	want := []Window{
		{Index: 1, Start: 1, End: 4, GCPercent: 50.0},
		{Index: 2, Start: 5, End: 8, GCPercent: 50.0},
		{Index: 3, Start: 9, End: 9, GCPercent: 0.0},
	}
	if len(windows) != len(want) {
		t.Fatalf("got %d windows, want %d", len(windows), len(want))
	}
	for i, w := range want {
		if windows[i] != w {
			t.Fatalf("window %d = %+v, want %+v", i, windows[i], w)
		}
	}
}

func TestWindowedGCPartition(t *testing.T) {
	s := Sequence("ACGTGGCCATATACGGTTAACCG")
	for _, size := range []int{1, 3, 7, len(s)} {
		windows, err := WindowedGC(s, size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		wantCount := (len(s) + size - 1) / size
		if len(windows) != wantCount {
			t.Fatalf("size %d: got %d windows, want %d", size, len(windows), wantCount)
		}
		next := 1
		for _, w := range windows {
			if w.Start != next {
				t.Fatalf("size %d: window %d starts at %d, want %d (gap or overlap)", size, w.Index, w.Start, next)
			}
			next = w.End + 1
		}
		if next != len(s)+1 {
			t.Fatalf("size %d: windows end at %d, want %d", size, next-1, len(s))
		}
		last := windows[len(windows)-1]
		wantLast := len(s) % size
		if wantLast == 0 {
			wantLast = size
		}
		if last.End-last.Start+1 != wantLast {
			t.Fatalf("size %d: last window length %d, want %d", size, last.End-last.Start+1, wantLast)
		}
	}
}

func TestWindowedGCInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, 5} {
		_, err := WindowedGC("ACGT", size)
		var iwe *InvalidWindowSizeError
		if !errors.As(err, &iwe) {
			t.Fatalf("size %d: error = %v, want InvalidWindowSizeError", size, err)
		}
		if iwe.Size != size {
			t.Fatalf("error reports size %d, want %d", iwe.Size, size)
		}
	}
}

func TestSummarizeWindows(t *testing.T) {
	windows, err := WindowedGC("ACGTACGTA", 4)
	if err != nil {
		t.Fatalf("WindowedGC returned error: %v", err)
	}
	stats := SummarizeWindows(windows)
	if math.Abs(stats.Mean-100.0/3) > 1e-9 {
		t.Fatalf("mean = %v, want %v", stats.Mean, 100.0/3)
	}
	if stats.Min != 0.0 || stats.Max != 50.0 {
		t.Fatalf("min/max = %v/%v, want 0/50", stats.Min, stats.Max)
	}
	if stats.StdDev <= 0 || math.IsNaN(stats.StdDev) {
		t.Fatalf("stddev = %v, want positive finite", stats.StdDev)
	}
}

func TestSummarizeWindowsDegenerate(t *testing.T) {
	if stats := SummarizeWindows(nil); stats != (WindowStats{}) {
		t.Fatalf("empty report stats = %+v, want zero value", stats)
	}
	single := []Window{{Index: 1, Start: 1, End: 4, GCPercent: 75.0}}
	stats := SummarizeWindows(single)
	if stats.Mean != 75.0 || stats.StdDev != 0 || stats.Min != 75.0 || stats.Max != 75.0 {
		t.Fatalf("single window stats = %+v", stats)
	}
}
