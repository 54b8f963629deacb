package seq

import (
	"reflect"
	"testing"
)

func TestFindORFs(t *testing.T) {
	tests := []struct {
		name string
		seq  Sequence
		want []ORF
	}{
		{
			// ATG at 0, codons AAA then TAA at 6; the trailing ATG at 9
			// has no room for an in-frame stop and is discarded.
			"spec scenario", "ATGAAATAAATG", []ORF{{Start: 0, End: 8}},
		},
		{
			// Overlapping starts at 0 and 3 share the stop at 6.
			"overlapping starts", "ATGATGTAA", []ORF{{Start: 0, End: 8}, {Start: 3, End: 8}},
		},
		{"no start", "CCCTAACCC", nil},
		{"start without stop", "ATGAAAAAA", nil},
		{
			// The stop at 4 is out of frame for the start at 0; the
			// in-frame stop is at 9.
			"out of frame stop", "ATGATAAGCTGA", []ORF{{Start: 0, End: 11}},
		},
		{"minimal", "ATGTAA", []ORF{{Start: 0, End: 5}}},
		{"all stop codons", "ATGTAGATGTGA", []ORF{{Start: 0, End: 5}, {Start: 6, End: 11}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindORFs(tt.seq)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FindORFs(%q) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestFindORFsInvariants(t *testing.T) {
	s := Sequence("ATGATGAAATAAGCATGCCCTGAATGTTTTAG")
	orfs := FindORFs(s)
	if len(orfs) == 0 {
		t.Fatal("expected ORFs in test sequence")
	}
	prevStart := -1
	for _, o := range orfs {
		if o.Start <= prevStart {
			t.Fatalf("starts not ascending: %v", orfs)
		}
		prevStart = o.Start
		if string(s[o.Start:o.Start+3]) != "ATG" {
			t.Fatalf("ORF %+v does not begin with ATG", o)
		}
		stop := string(s[o.End-2 : o.End+1])
		if !stopCodons[stop] {
			t.Fatalf("ORF %+v ends with %q, not a stop codon", o, stop)
		}
		if o.Length()%3 != 0 {
			t.Fatalf("ORF %+v length %d not codon-aligned", o, o.Length())
		}
	}
}

func TestFindORFsFirstStopWins(t *testing.T) {
	// Two in-frame stops; only the first closes the ORF.
	orfs := FindORFs("ATGAAATAATAG")
	want := []ORF{{Start: 0, End: 8}}
	if !reflect.DeepEqual(orfs, want) {
		t.Fatalf("FindORFs = %v, want %v", orfs, want)
	}
}
