package seq

import (
	"errors"
	"fmt"
)

// ErrInvalidMotif is wrapped with the specific reason a motif was
// rejected: blank, out-of-alphabet characters, or longer than the
// sequence it targets.
var ErrInvalidMotif = errors.New("invalid motif")

// Motif is a validated query pattern over the same alphabet as Sequence.
type Motif string

// NewMotif normalizes raw the same way New does and checks it against
// the target sequence. Interactive callers should reject bad motifs here
// before searching.
func NewMotif(raw string, target Sequence) (Motif, error) {
	s, err := New(raw)
	if err != nil {
		var ire *InvalidResidueError
		if errors.As(err, &ire) {
			return "", fmt.Errorf("%w: %v", ErrInvalidMotif, err)
		}
		return "", fmt.Errorf("%w: blank", ErrInvalidMotif)
	}
	if len(s) > len(target) {
		return "", fmt.Errorf("%w: longer than sequence (%d > %d)", ErrInvalidMotif, len(s), len(target))
	}
	return Motif(s), nil
}

// FindMotif returns every zero-based offset where m occurs in s, in
// ascending order, overlapping matches included ("AA" in "AAA" yields
// [0 1]). An empty or over-long motif yields an empty result rather than
// an error; zero matches is a valid empty result.
func FindMotif(s Sequence, m Motif) []int {
	if len(m) == 0 || len(m) > len(s) {
		return nil
	}
	var positions []int
	for i := 0; i <= len(s)-len(m); i++ {
		if string(s[i:i+len(m)]) == string(m) {
			positions = append(positions, i)
		}
	}
	return positions
}
