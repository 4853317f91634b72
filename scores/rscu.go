package scores

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/codonbias/stats"
)

// Mean selectors for models combining per-codon weights into a
// scalar.
const (
	GeometricMean  = "geometric"
	ArithmeticMean = "arithmetic"
)

// RelativeSynonymousCodonUsage is the RSCU model (Sharp & Li, NAR,
// 1986). Every codon of a query is weighted by the ratio between its
// observed within-group frequency and a background frequency: uniform
// over synonymous codons, or learned from a reference set when one is
// given. The directional variant (Sabi & Tuller) amplifies both over-
// and under-represented codons by taking the maximum of the ratio and
// its reciprocal.
type RelativeSynonymousCodonUsage struct {
	counter     *stats.CodonCounter
	directional bool
	mean        string
	pseudocount float64
	reference   *stats.AATable
}

// NewRelativeSynonymousCodonUsage creates an RSCU model. refSeqs may
// be nil, selecting the uniform background. mean selects how the
// scalar score is computed (GeometricMean or ArithmeticMean).
func NewRelativeSynonymousCodonUsage(refSeqs []string, directional bool,
	mean string, gCodeID int, ignoreStop bool, pseudocount float64) (*RelativeSynonymousCodonUsage, error) {
	counter, err := stats.NewCodonCounter(gCodeID, 1, ignoreStop)
	if err != nil {
		return nil, err
	}

	// with no reference sequences the pseudocount alone yields the
	// uniform within-group distribution
	reference := counter.Count(refSeqs...).AATable(true, pseudocount)

	return &RelativeSynonymousCodonUsage{
		counter:     counter,
		directional: directional,
		mean:        mean,
		pseudocount: pseudocount,
		reference:   reference,
	}, nil
}

// Weights returns the per-codon RSCU ratios of the query sequence.
func (r *RelativeSynonymousCodonUsage) Weights(seq string) map[string]float64 {
	weights, _ := r.calcWeights(seq)
	return weights
}

func (r *RelativeSynonymousCodonUsage) calcWeights(seq string) (map[string]float64, *stats.Counts) {
	counts := r.counter.Count(seq)
	p := counts.AATable(true, r.pseudocount)

	weights := make(map[string]float64, len(p.Freq))
	for _, codon := range r.counter.Domain() {
		w := p.Freq[codon] / r.reference.Freq[codon]
		if r.directional && 1/w > w {
			w = 1 / w
		}
		weights[codon] = w
	}
	return weights, counts
}

// Score combines the query's codon ratios into a scalar: the
// geometric mean of the ratios minus 1, or their counts-weighted
// arithmetic mean, per the mean selector.
func (r *RelativeSynonymousCodonUsage) Score(seq string) (float64, error) {
	weights, counts := r.calcWeights(seq)
	vals, cnts := alignTables(r.counter.Domain(), weights, counts.Counts)

	switch r.mean {
	case GeometricMean:
		for i, v := range vals {
			vals[i] = math.Log(v)
		}
		return geoMean(vals, cnts) - 1, nil
	case ArithmeticMean:
		return weightedMean(vals, cnts), nil
	default:
		return 0, fmt.Errorf("unknown mean: %s", r.mean)
	}
}

// Vector returns the RSCU ratio at every codon position.
func (r *RelativeSynonymousCodonUsage) Vector(seq string) ([]float64, error) {
	weights, _ := r.calcWeights(seq)
	return lookupVector(weights, r.counter.Windows(seq)), nil
}
