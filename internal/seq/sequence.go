// Package seq holds the sequence analysis core: validated sequence
// construction, base composition, motif search, windowed GC content and
// forward-strand ORF detection. Everything here is pure computation over
// an immutable Sequence; prompting, file handling and report writing live
// with the callers.
package seq

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Alphabet is the set of residues a Sequence may contain.
const Alphabet = "ACGT"

// Sequence is a validated, uppercase DNA sequence. Values are only
// produced by New (or ParseText) and are never mutated afterwards.
type Sequence string

// ErrEmptySequence is returned when input contains no residues after
// whitespace removal.
var ErrEmptySequence = errors.New("empty sequence")

// ErrMultiRecord is returned by ParseText when the input contains more
// than one FASTA record.
var ErrMultiRecord = errors.New("multi-record input not supported")

// InvalidResidueError reports the first character outside the alphabet,
// with its zero-based offset in the normalized input.
type InvalidResidueError struct {
	Residue rune
	Offset  int
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid residue %q at position %d (allowed: A C G T)", e.Residue, e.Offset)
}

// New normalizes raw text into a Sequence: all whitespace is removed,
// remaining characters are uppercased, and every residue must be one of
// A, C, G, T. The first offending character is reported.
func New(raw string) (Sequence, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	s := b.String()
	if s == "" {
		return "", ErrEmptySequence
	}
	for i, r := range s {
		switch r {
		case 'A', 'C', 'G', 'T':
		default:
			return "", &InvalidResidueError{Residue: r, Offset: i}
		}
	}
	return Sequence(s), nil
}

// ParseText builds a Sequence from raw file contents. A single leading
// FASTA header line (">name") is accepted and returned as the source
// identifier; any further header marks a multi-record file, which is
// rejected. Plain residue text passes through with an empty identifier.
func ParseText(raw string) (string, Sequence, error) {
	id := ""
	var body strings.Builder
	sawHeader := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ">") {
			if sawHeader {
				return "", "", ErrMultiRecord
			}
			sawHeader = true
			id = strings.TrimSpace(trimmed[1:])
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	s, err := New(body.String())
	if err != nil {
		return "", "", err
	}
	return id, s, nil
}
