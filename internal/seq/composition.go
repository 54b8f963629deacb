package seq

import "errors"

// ErrEmptyInput guards GC computation on zero-length input, e.g. when
// reused on sub-sequences.
var ErrEmptyInput = errors.New("empty input")

// CountResidues tallies each base in s. All four alphabet keys are
// always present, zero when the base does not occur; the counts sum to
// len(s).
func CountResidues(s Sequence) map[byte]int {
	counts := map[byte]int{'A': 0, 'C': 0, 'G': 0, 'T': 0}
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	return counts
}

// GCPercent returns 100 * (G+C) / len(s).
func GCPercent(s Sequence) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(s)), nil
}
