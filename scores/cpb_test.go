package scores

import (
	"math"
	"testing"
)

// pairRefSeqs enumerates every ordered pair over a small codon set, so
// codon pairing is exactly what the marginals predict.
func pairRefSeqs() []string {
	codons := []string{"GAA", "GAG", "AAA", "AAG"}
	seqs := make([]string, 0, len(codons)*len(codons))
	for _, a := range codons {
		for _, b := range codons {
			seqs = append(seqs, a+b)
		}
	}
	return seqs
}

func TestCodonPairBiasIndependence(tst *testing.T) {
	cpb, err := NewCodonPairBias(pairRefSeqs(), 2, 1, true, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}

	// every observed pair occurs exactly as often as independence
	// predicts, at the codon and the amino-acid level alike
	for _, seq := range pairRefSeqs() {
		if w := cpb.weights[seq]; w != 0 {
			tst.Error("Expected weight 0 for", seq, ", got", w)
		}
	}

	s, err := cpb.Score("GAAGAGAAAAAG")
	if err != nil {
		tst.Error("Error: ", err)
	}
	if s != 0 {
		tst.Error("Expected 0, got", s)
	}
}

func TestCodonPairBiasEnrichment(tst *testing.T) {
	// GAGGAG is over-represented relative to its marginals
	ref := []string{"GAGGAG", "GAGGAG", "GAGGAG", "GAGGAA", "GAAGAG", "GAAGAA"}
	cpb, err := NewCodonPairBias(ref, 2, 1, true, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if cpb.weights["GAGGAG"] <= 0 {
		tst.Error("Expected a positive weight for GAGGAG, got", cpb.weights["GAGGAG"])
	}
	if cpb.weights["GAGGAA"] >= 0 {
		tst.Error("Expected a negative weight for GAGGAA, got", cpb.weights["GAGGAA"])
	}
}

func TestCodonPairBiasVector(tst *testing.T) {
	cpb, err := NewCodonPairBias(pairRefSeqs(), 2, 1, true, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	v, err := cpb.Vector("GAAGAGA")
	if err != nil {
		tst.Error("Error: ", err)
	}
	// windows start at every codon; the last two are truncated
	if len(v) != 3 {
		tst.Fatal("Expected 3 positions, got", len(v))
	}
	if v[0] != 0 {
		tst.Error("Expected 0 at position 0, got", v[0])
	}
	if !math.IsNaN(v[1]) || !math.IsNaN(v[2]) {
		tst.Error("Expected NaN for truncated windows, got", v[1], v[2])
	}
}
