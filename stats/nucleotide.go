package stats

import "strings"

// bases is the nucleotide alphabet used by the nucleotide counter.
var bases = [...]byte{'A', 'C', 'G', 'T'}

// NucleotideTable holds nucleotide counts for the letters A, C, G and
// T. Other letters are ignored during counting.
type NucleotideTable map[byte]float64

// CountNucleotides counts nucleotides of one or more sequences summed
// together.
func CountNucleotides(seqs ...string) NucleotideTable {
	t := NucleotideTable{'A': 0, 'C': 0, 'G': 0, 'T': 0}
	for _, seq := range seqs {
		seq = strings.Replace(strings.ToUpper(seq), "U", "T", -1)
		for i := 0; i < len(seq); i++ {
			if _, ok := t[seq[i]]; ok {
				t[seq[i]]++
			}
		}
	}
	return t
}

// Freq returns pseudocount-corrected base frequencies. With an empty
// table and a positive pseudocount the result is uniform.
func (t NucleotideTable) Freq(pseudocount float64) map[byte]float64 {
	res := make(map[byte]float64, len(bases))
	total := 0.0
	for _, b := range bases {
		res[b] = t[b] + pseudocount
		total += res[b]
	}
	for _, b := range bases {
		res[b] /= total
	}
	return res
}

// Phases splits a coding sequence into its three phase-shifted
// sub-sequences (codon positions 1, 2 and 3).
func Phases(seq string) [3]string {
	var res [3]string
	for p := 0; p < 3; p++ {
		var b strings.Builder
		for i := p; i < len(seq); i += 3 {
			b.WriteByte(seq[i])
		}
		res[p] = b.String()
	}
	return res
}

// PositionalFreq returns the base composition of each of the three
// codon positions of a coding sequence, with additive smoothing.
func PositionalFreq(seq string, pseudocount float64) [3]map[byte]float64 {
	phases := Phases(seq)
	var res [3]map[byte]float64
	for p := 0; p < 3; p++ {
		res[p] = CountNucleotides(phases[p]).Freq(pseudocount)
	}
	return res
}
