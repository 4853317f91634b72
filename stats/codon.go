// Package stats provides codon and nucleotide counting over coding
// sequences. Counts are produced per codon k-mer under a selectable
// genetic code and stop-codon policy, and can be turned into tables
// normalized per amino-acid group or over the full codon domain.
package stats

import (
	"fmt"
	"strings"

	"bitbucket.org/Davydov/codonbias/bio"
)

// CodonCounter counts codon k-mers of coding sequences.
type CodonCounter struct {
	// GCode is the active genetic code.
	GCode *bio.GeneticCode
	// K is the k-mer size (number of consecutive codons per unit).
	K int
	// IgnoreStop excludes stop codons from the domain.
	IgnoreStop bool

	// domain holds all k-mers over the codon domain in canonical
	// order; aa translates a domain k-mer into its amino-acid k-mer.
	domain []string
	aa     map[string]string
}

// NewCodonCounter creates a counter for the given NCBI genetic code
// ID, k-mer size and stop-codon policy.
func NewCodonCounter(gCodeID, k int, ignoreStop bool) (*CodonCounter, error) {
	gcode, ok := bio.GeneticCodes[gCodeID]
	if !ok {
		return nil, fmt.Errorf("couldn't load genetic code with id=%d", gCodeID)
	}
	if k < 1 {
		return nil, fmt.Errorf("invalid k-mer size %d", k)
	}
	c := &CodonCounter{
		GCode:      gcode,
		K:          k,
		IgnoreStop: ignoreStop,
	}

	codons := make([]string, 0, 64)
	for codon := range bio.GetCodons() {
		if ignoreStop && gcode.IsStopCodon(codon) {
			continue
		}
		codons = append(codons, codon)
	}

	kmers := []string{""}
	for i := 0; i < k; i++ {
		next := make([]string, 0, len(kmers)*len(codons))
		for _, prefix := range kmers {
			for _, codon := range codons {
				next = append(next, prefix+codon)
			}
		}
		kmers = next
	}
	c.domain = kmers

	c.aa = make(map[string]string, len(kmers))
	for _, kmer := range kmers {
		var b strings.Builder
		for i := 0; i < len(kmer); i += 3 {
			b.WriteByte(gcode.Map[kmer[i:i+3]])
		}
		c.aa[kmer] = b.String()
	}

	return c, nil
}

// Domain returns all codon k-mers of the counter's domain in
// canonical order. The returned slice must not be modified.
func (c *CodonCounter) Domain() []string {
	return c.domain
}

// AminoAcids translates a domain k-mer into its amino-acid k-mer.
func (c *CodonCounter) AminoAcids(kmer string) (string, bool) {
	aa, ok := c.aa[kmer]
	return aa, ok
}

// Windows returns one k-mer window per codon position of the
// sequence. Windows near the end of the sequence may be truncated;
// such windows (and windows with codons outside the domain) are not
// counted but keep the per-position indexing intact.
func (c *CodonCounter) Windows(seq string) []string {
	seq = strings.Replace(strings.ToUpper(seq), "U", "T", -1)
	n := len(seq) / 3
	if len(seq)%3 != 0 {
		n++
	}
	windows := make([]string, 0, n)
	for i := 0; i < len(seq); i += 3 {
		end := i + 3*c.K
		if end > len(seq) {
			end = len(seq)
		}
		windows = append(windows, seq[i:end])
	}
	return windows
}

// Count counts codon k-mers of one or more sequences summed together.
// The resulting table spans the full domain; with no (or empty)
// sequences all counts are zero.
func (c *CodonCounter) Count(seqs ...string) *Counts {
	counts := make(map[string]float64, len(c.domain))
	for _, kmer := range c.domain {
		counts[kmer] = 0
	}
	for _, seq := range seqs {
		for _, w := range c.Windows(seq) {
			if len(w) != 3*c.K {
				continue
			}
			if _, ok := c.aa[w]; !ok {
				continue
			}
			counts[w]++
		}
	}
	return &Counts{Counter: c, Counts: counts}
}

// Counts is a count table over the counter's k-mer domain. It is
// never mutated after creation.
type Counts struct {
	Counter *CodonCounter
	Counts  map[string]float64
}

// Total returns the sum of all counts.
func (t *Counts) Total() (total float64) {
	for _, kmer := range t.Counter.Domain() {
		total += t.Counts[kmer]
	}
	return total
}

// AATable returns the counts keyed by k-mer and grouped by amino
// acid. With normed, values are pseudocount-corrected frequencies
// normalized within each amino-acid group.
func (t *Counts) AATable(normed bool, pseudocount float64) *AATable {
	tbl := &AATable{
		counter: t.Counter,
		Freq:    make(map[string]float64, len(t.Counts)),
		Group:   make(map[string]string, len(t.Counts)),
	}
	for _, kmer := range t.Counter.Domain() {
		aa, _ := t.Counter.AminoAcids(kmer)
		tbl.Freq[kmer] = t.Counts[kmer] + pseudocount
		tbl.Group[kmer] = aa
	}
	if normed {
		sums := tbl.GroupSums()
		for kmer, f := range tbl.Freq {
			tbl.Freq[kmer] = f / sums[tbl.Group[kmer]]
		}
	}
	return tbl
}

// CodonTable returns the counts keyed by k-mer. With normed, values
// are pseudocount-corrected frequencies normalized over the whole
// domain.
func (t *Counts) CodonTable(normed bool, pseudocount float64) map[string]float64 {
	res := make(map[string]float64, len(t.Counts))
	total := 0.0
	for _, kmer := range t.Counter.Domain() {
		res[kmer] = t.Counts[kmer] + pseudocount
		total += res[kmer]
	}
	if normed {
		for kmer, f := range res {
			res[kmer] = f / total
		}
	}
	return res
}

// AATable is a table of per-k-mer values stratified by amino-acid
// group.
type AATable struct {
	counter *CodonCounter
	// Freq holds the value for every domain k-mer.
	Freq map[string]float64
	// Group maps a domain k-mer to its amino-acid k-mer.
	Group map[string]string
}

// GroupSums folds the table into per-group sums.
func (t *AATable) GroupSums() map[string]float64 {
	sums := make(map[string]float64)
	for _, kmer := range t.counter.Domain() {
		sums[t.Group[kmer]] += t.Freq[kmer]
	}
	return sums
}

// GroupMax folds the table into per-group maxima.
func (t *AATable) GroupMax() map[string]float64 {
	max := make(map[string]float64)
	for _, kmer := range t.counter.Domain() {
		aa := t.Group[kmer]
		if m, ok := max[aa]; !ok || t.Freq[kmer] > m {
			max[aa] = t.Freq[kmer]
		}
	}
	return max
}

// GroupSizes returns the number of k-mers in each amino-acid group
// (the degeneracy, for k=1).
func (t *AATable) GroupSizes() map[string]int {
	sizes := make(map[string]int)
	for _, kmer := range t.counter.Domain() {
		sizes[t.Group[kmer]]++
	}
	return sizes
}
