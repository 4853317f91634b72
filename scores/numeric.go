package scores

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// weightedMean returns the weighted arithmetic mean of vals. Entries
// with zero weight are skipped, so undefined values never contribute.
// NaN is returned when no entry carries weight.
func weightedMean(vals, weights []float64) float64 {
	v := make([]float64, 0, len(vals))
	w := make([]float64, 0, len(weights))
	for i := range vals {
		if weights[i] == 0 {
			continue
		}
		v = append(v, vals[i])
		w = append(w, weights[i])
	}
	if len(v) == 0 {
		return math.NaN()
	}
	return stat.Mean(v, w)
}

// geoMean returns the weighted geometric mean given the logarithms of
// the values.
func geoMean(logVals, weights []float64) float64 {
	return math.Exp(weightedMean(logVals, weights))
}

// alignTables flattens a value table and a weight (count) table into
// aligned slices following the canonical domain order, keeping
// summation deterministic.
func alignTables(domain []string, vals, weights map[string]float64) ([]float64, []float64) {
	v := make([]float64, len(domain))
	w := make([]float64, len(domain))
	for i, kmer := range domain {
		v[i] = vals[kmer]
		w[i] = weights[kmer]
	}
	return v, w
}

// lookupVector maps every window to its table value, NaN when the
// window is outside the table's domain.
func lookupVector(table map[string]float64, windows []string) []float64 {
	res := make([]float64, len(windows))
	for i, w := range windows {
		if v, ok := table[w]; ok {
			res[i] = v
		} else {
			res[i] = math.NaN()
		}
	}
	return res
}
