package seq

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Window is one non-overlapping slice of the sequence. Start and End are
// 1-based inclusive base positions for display; Index is 1-based window
// number in left-to-right scan order.
type Window struct {
	Index     int
	Start     int
	End       int
	GCPercent float64
}

// InvalidWindowSizeError reports a window size that is non-positive or
// exceeds the sequence length.
type InvalidWindowSizeError struct {
	Size   int
	SeqLen int
}

func (e *InvalidWindowSizeError) Error() string {
	return fmt.Sprintf("invalid window size %d for sequence of length %d", e.Size, e.SeqLen)
}

// WindowedGC partitions s into consecutive windows of size residues
// starting at offset 0 and computes each window's GC percentage over its
// own length. The final window may be shorter; it is still reported.
func WindowedGC(s Sequence, size int) ([]Window, error) {
	if size <= 0 || size > len(s) {
		return nil, &InvalidWindowSizeError{Size: size, SeqLen: len(s)}
	}
	windows := make([]Window, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		gc, err := GCPercent(s[start:end])
		if err != nil {
			return nil, err
		}
		windows = append(windows, Window{
			Index:     len(windows) + 1,
			Start:     start + 1,
			End:       end,
			GCPercent: gc,
		})
	}
	return windows, nil
}

// WindowStats summarizes per-window GC percentages.
type WindowStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// SummarizeWindows computes mean, standard deviation and range of the
// per-window GC percentages. The zero value is returned for an empty
// report; a single window has zero standard deviation.
func SummarizeWindows(windows []Window) WindowStats {
	if len(windows) == 0 {
		return WindowStats{}
	}
	gcs := make([]float64, len(windows))
	min, max := windows[0].GCPercent, windows[0].GCPercent
	for i, w := range windows {
		gcs[i] = w.GCPercent
		if w.GCPercent < min {
			min = w.GCPercent
		}
		if w.GCPercent > max {
			max = w.GCPercent
		}
	}
	stats := WindowStats{Mean: stat.Mean(gcs, nil), Min: min, Max: max}
	if len(gcs) > 1 {
		stats.StdDev = stat.StdDev(gcs, nil)
	}
	return stats
}
