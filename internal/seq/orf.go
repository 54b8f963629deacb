package seq

const startCodon = "ATG"

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// ORF is a forward-strand open reading frame. Start and End are
// zero-based inclusive offsets; End-Start+1 is always a multiple of 3.
type ORF struct {
	Start int
	End   int
}

// Length returns the ORF length in bases, stop codon included.
func (o ORF) Length() int { return o.End - o.Start + 1 }

// FindORFs scans s for regions opening with ATG and closed by the first
// in-frame stop codon (TAA, TAG or TGA). The outer cursor advances one
// base at a time, so start codons at any offset are tested independently
// and overlapping ORFs are all reported, in ascending start order. A
// start with no in-frame stop before the end of the sequence produces no
// record. An empty result is valid and means no ORFs were found.
func FindORFs(s Sequence) []ORF {
	var orfs []ORF
	for i := 0; i+3 <= len(s); i++ {
		if string(s[i:i+3]) != startCodon {
			continue
		}
		for j := i + 3; j+3 <= len(s); j += 3 {
			if stopCodons[string(s[j:j+3])] {
				orfs = append(orfs, ORF{Start: i, End: j + 2})
				break
			}
		}
	}
	return orfs
}
