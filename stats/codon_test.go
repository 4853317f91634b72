package stats

import (
	"math"
	"testing"
)

const smallDiff = 1e-12

func TestDomain(tst *testing.T) {
	c, err := NewCodonCounter(1, 1, true)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(c.Domain()) != 61 {
		tst.Error("Expected 61 codons, got", len(c.Domain()))
	}

	c, err = NewCodonCounter(1, 1, false)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(c.Domain()) != 64 {
		tst.Error("Expected 64 codons, got", len(c.Domain()))
	}

	c, err = NewCodonCounter(1, 2, true)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(c.Domain()) != 61*61 {
		tst.Error("Expected 3721 codon pairs, got", len(c.Domain()))
	}
}

func TestNewCodonCounterErrors(tst *testing.T) {
	if _, err := NewCodonCounter(99, 1, true); err == nil {
		tst.Error("Expected error for unknown genetic code")
	}
	if _, err := NewCodonCounter(1, 0, true); err == nil {
		tst.Error("Expected error for invalid k-mer size")
	}
}

func TestCount(tst *testing.T) {
	c, _ := NewCodonCounter(1, 1, true)

	counts := c.Count("ACGACGGAGGAG")
	if counts.Counts["ACG"] != 2 || counts.Counts["GAG"] != 2 {
		tst.Error("Wrong counts:", counts.Counts["ACG"], counts.Counts["GAG"])
	}
	if counts.Total() != 4 {
		tst.Error("Expected total 4, got", counts.Total())
	}
	if len(counts.Counts) != 61 {
		tst.Error("Count table should span the full domain, got", len(counts.Counts))
	}

	// lowercase and RNA input
	counts = c.Count("acgacg", "gAGgag")
	if counts.Counts["ACG"] != 2 || counts.Counts["GAG"] != 2 {
		tst.Error("Wrong counts for mixed-case input")
	}

	// empty input materializes the zero table
	counts = c.Count()
	if counts.Total() != 0 || len(counts.Counts) != 61 {
		tst.Error("Expected zero counts over the full domain")
	}

	// stop codons and ambiguous codons are outside the domain
	counts = c.Count("TAAGNGACG")
	if counts.Total() != 1 || counts.Counts["ACG"] != 1 {
		tst.Error("Expected only ACG to be counted")
	}
}

func TestCountKmer(tst *testing.T) {
	c, _ := NewCodonCounter(1, 2, true)

	counts := c.Count("ACGGAGAAA")
	if counts.Counts["ACGGAG"] != 1 || counts.Counts["GAGAAA"] != 1 {
		tst.Error("Expected overlapping pair windows to be counted")
	}
	if counts.Total() != 2 {
		tst.Error("Expected total 2, got", counts.Total())
	}

	windows := c.Windows("ACGGAGAAA")
	if len(windows) != 3 {
		tst.Error("Expected 3 windows, got", len(windows))
	}
	if windows[2] != "AAA" {
		tst.Error("Expected truncated trailing window, got", windows[2])
	}
}

func TestAATable(tst *testing.T) {
	c, _ := NewCodonCounter(1, 1, true)

	// pseudocount alone yields the uniform within-group distribution
	tbl := c.Count().AATable(true, 1)
	if math.Abs(tbl.Freq["GAG"]-0.5) > smallDiff {
		tst.Error("Expected 0.5 for GAG, got", tbl.Freq["GAG"])
	}
	if math.Abs(tbl.Freq["ACG"]-0.25) > smallDiff {
		tst.Error("Expected 0.25 for ACG, got", tbl.Freq["ACG"])
	}

	if tbl.Group["GAG"] != "E" || tbl.Group["ATG"] != "M" {
		tst.Error("Wrong amino-acid grouping")
	}

	sizes := tbl.GroupSizes()
	if sizes["E"] != 2 || sizes["L"] != 6 || sizes["M"] != 1 {
		tst.Error("Wrong group sizes:", sizes["E"], sizes["L"], sizes["M"])
	}

	// normalized frequencies sum to 1 within each group
	sums := c.Count("GAGGAAGAG").AATable(true, 1).GroupSums()
	for aa, sum := range sums {
		if math.Abs(sum-1) > smallDiff {
			tst.Error("Group", aa, "sums to", sum)
		}
	}

	max := c.Count("GAGGAAGAG").AATable(true, 1).GroupMax()
	if math.Abs(max["E"]-0.6) > smallDiff {
		tst.Error("Expected group max 0.6, got", max["E"])
	}
}

func TestCodonTable(tst *testing.T) {
	c, _ := NewCodonCounter(1, 1, true)

	tbl := c.Count("ACGACGGAGGAG").CodonTable(true, 1)
	total := 0.0
	for _, f := range tbl {
		total += f
	}
	if math.Abs(total-1) > smallDiff {
		tst.Error("Normalized codon table sums to", total)
	}
	if math.Abs(tbl["ACG"]-3.0/65.0) > smallDiff {
		tst.Error("Expected 3/65 for ACG, got", tbl["ACG"])
	}
}
