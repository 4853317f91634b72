package scores

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/codonbias/stats"
)

// RelativeCodonBiasScore is the RCBS model (Roymondal, Das & Sahoo,
// DNA Research, 2009). The background of every query is estimated
// from its own per-codon-position nucleotide composition, under the
// null hypothesis that the three positions are independent; every
// codon is weighted by its observed-to-expected ratio. The
// directional variant (DCBS, Sabi & Tuller, DNA Research, 2014) gives
// high weights to under-represented codons as well and is typically
// combined with the arithmetic mean. There is nothing to fit: the
// model is purely per-query.
type RelativeCodonBiasScore struct {
	counter     *stats.CodonCounter
	directional bool
	mean        string
	pseudocount float64
}

// NewRelativeCodonBiasScore creates an RCBS model. mean selects how
// the scalar score is computed (GeometricMean or ArithmeticMean).
func NewRelativeCodonBiasScore(directional bool, mean string, gCodeID int,
	ignoreStop bool, pseudocount float64) (*RelativeCodonBiasScore, error) {
	counter, err := stats.NewCodonCounter(gCodeID, 1, ignoreStop)
	if err != nil {
		return nil, err
	}
	return &RelativeCodonBiasScore{
		counter:     counter,
		directional: directional,
		mean:        mean,
		pseudocount: pseudocount,
	}, nil
}

// calcWeights computes the observed-to-expected codon ratios of the
// query. The background codon composition is the product of the three
// positional base probabilities, normalized over all 64 codons.
func (r *RelativeCodonBiasScore) calcWeights(seq string) (map[string]float64, *stats.Counts) {
	counts := r.counter.Count(seq)
	bnc := stats.PositionalFreq(seq, 1)

	bases := "ACGT"
	bcc := make(map[string]float64, 64)
	bccTotal := 0.0
	for i := 0; i < len(bases); i++ {
		for j := 0; j < len(bases); j++ {
			for k := 0; k < len(bases); k++ {
				codon := string([]byte{bases[i], bases[j], bases[k]})
				p := bnc[0][bases[i]] * bnc[1][bases[j]] * bnc[2][bases[k]]
				bcc[codon] = p
				bccTotal += p
			}
		}
	}
	for codon := range bcc {
		bcc[codon] /= bccTotal
	}

	p := counts.CodonTable(true, r.pseudocount)
	weights := make(map[string]float64, len(p))
	for _, codon := range r.counter.Domain() {
		w := p[codon] / bcc[codon]
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
func (r *RelativeCodonBiasScore) Score(seq string) (float64, error) {
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

// Vector returns the observed-to-expected ratio at every codon
// position.
func (r *RelativeCodonBiasScore) Vector(seq string) ([]float64, error) {
	weights, _ := r.calcWeights(seq)
	return lookupVector(weights, r.counter.Windows(seq)), nil
}
