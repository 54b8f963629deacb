package seq

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindMotif(t *testing.T) {
	tests := []struct {
		name  string
		seq   Sequence
		motif Motif
		want  []int
	}{
		{"overlapping", "AAAA", "AA", []int{0, 1, 2}},
		{"triple overlap", "AAA", "AA", []int{0, 1}},
		{"single hit", "ACGTACGT", "GTA", []int{2}},
		{"repeated", "ATGATGATG", "ATG", []int{0, 3, 6}},
		{"no match", "ACGT", "TT", nil},
		{"whole sequence", "ACGT", "ACGT", []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMotif(tt.seq, tt.motif)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FindMotif(%q, %q) = %v, want %v", tt.seq, tt.motif, got, tt.want)
			}
		})
	}
}

func TestFindMotifPositionsValid(t *testing.T) {
	s := Sequence("ATGATATGACGATGA")
	m := Motif("ATGA")
	positions := FindMotif(s, m)
	if len(positions) == 0 {
		t.Fatal("expected matches")
	}
	prev := -1
	for _, p := range positions {
		if p <= prev {
			t.Fatalf("positions not strictly ascending: %v", positions)
		}
		prev = p
		if string(s[p:p+len(m)]) != string(m) {
			t.Fatalf("offset %d does not match motif: %q", p, s[p:p+len(m)])
		}
	}
}

func TestFindMotifDefensive(t *testing.T) {
	if got := FindMotif("ACG", "ACGT"); got != nil {
		t.Fatalf("over-long motif should yield empty result, got %v", got)
	}
	if got := FindMotif("ACG", ""); got != nil {
		t.Fatalf("empty motif should yield empty result, got %v", got)
	}
}

func TestNewMotif(t *testing.T) {
	target := Sequence("ACGTACGT")

	m, err := NewMotif(" at g ", target)
	if err != nil {
		t.Fatalf("NewMotif returned error: %v", err)
	}
	if m != "ATG" {
		t.Fatalf("NewMotif = %q, want ATG", m)
	}

	for _, raw := range []string{"", "  ", "ANT", "ACGTACGTA"} {
		if _, err := NewMotif(raw, target); !errors.Is(err, ErrInvalidMotif) {
			t.Fatalf("NewMotif(%q) error = %v, want ErrInvalidMotif", raw, err)
		}
	}
}
