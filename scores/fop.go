package scores

import (
	"bitbucket.org/Davydov/codonbias/stats"
)

// FrequencyOfOptimalCodons is the FOP model (Ikemura, J Mol Biol,
// 1981). Codons whose reference frequency is close to the maximum of
// their synonymous group are classified optimal (weight 1, others 0);
// the score of a sequence is the fraction of its codons classified
// optimal.
type FrequencyOfOptimalCodons struct {
	counter *stats.CodonCounter
	weights map[string]float64
}

// NewFrequencyOfOptimalCodons fits FOP on a reference set of coding
// sequences. A codon is optimal when its normalized frequency is at
// least thresh times the maximum of its amino-acid group (0.95 in the
// original model). pseudocount corrects frequencies of rare codons
// (use 1 unless the reference set is large).
func NewFrequencyOfOptimalCodons(refSeqs []string, thresh float64, gCodeID int,
	ignoreStop bool, pseudocount float64) (*FrequencyOfOptimalCodons, error) {
	counter, err := stats.NewCodonCounter(gCodeID, 1, ignoreStop)
	if err != nil {
		return nil, err
	}

	tbl := counter.Count(refSeqs...).AATable(true, pseudocount)
	max := tbl.GroupMax()

	weights := make(map[string]float64, len(tbl.Freq))
	for _, codon := range counter.Domain() {
		if tbl.Freq[codon]/max[tbl.Group[codon]] >= thresh {
			weights[codon] = 1
		} else {
			weights[codon] = 0
		}
	}

	return &FrequencyOfOptimalCodons{counter: counter, weights: weights}, nil
}

// Score returns the fraction of codons classified optimal.
func (f *FrequencyOfOptimalCodons) Score(seq string) (float64, error) {
	counts := f.counter.Count(seq)
	vals, weights := alignTables(f.counter.Domain(), f.weights, counts.Counts)
	return weightedMean(vals, weights), nil
}

// Vector returns the binary optimality weight at every codon
// position.
func (f *FrequencyOfOptimalCodons) Vector(seq string) ([]float64, error) {
	return lookupVector(f.weights, f.counter.Windows(seq)), nil
}
