// Package gtrnadb retrieves tRNA gene copy numbers per anticodon from
// GtRNAdb (http://gtrnadb.ucsc.edu).
package gtrnadb

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

// log is the global logging variable.
var log = logging.MustGetLogger("gtrnadb")

// BaseURL is the root of the GtRNAdb genome pages.
const BaseURL = "http://gtrnadb.ucsc.edu/genomes"

// DefaultClient is the HTTP client used by Fetch and FetchGenome.
var DefaultClient = &http.Client{Timeout: 30 * time.Second}

// GeneCopyNumber is the number of tRNA genes carrying a given
// anticodon.
type GeneCopyNumber struct {
	AntiCodon string
	GCN       float64
}

var (
	tagRe  = regexp.MustCompile(`<[^>]*>`)
	antiRe = regexp.MustCompile(`^[ACGTU]{3}$`)
)

// GenomeURL builds the GtRNAdb page URL of a genome from its
// taxonomic domain and genome ID.
func GenomeURL(domain, genomeID string) string {
	return fmt.Sprintf("%s/%s/%s/", BaseURL, domain, genomeID)
}

// FetchGenome retrieves the gene copy number table of a genome,
// identified by taxonomic domain and genome ID.
func FetchGenome(domain, genomeID string) ([]GeneCopyNumber, error) {
	return Fetch(GenomeURL(domain, genomeID))
}

// Fetch retrieves the gene copy number table from a GtRNAdb page URL.
// It fails when the source is unreachable or the page holds no
// recognizable anticodon counts.
func Fetch(url string) ([]GeneCopyNumber, error) {
	return FetchClient(DefaultClient, url)
}

// FetchClient is Fetch with an explicit HTTP client.
func FetchClient(client *http.Client, url string) ([]GeneCopyNumber, error) {
	log.Infof("Fetching tRNA gene counts from %s", url)
	resp, err := client.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching %s: %s", url, resp.Status)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", url)
	}

	tgcn, err := Parse(string(body))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", url)
	}
	log.Infof("Found gene counts for %d anticodons", len(tgcn))
	return tgcn, nil
}

// Parse extracts (anticodon, gene count) pairs from the HTML of a
// GtRNAdb gene-counts page. In these tables every anticodon cell is
// followed by its gene count cell; counts of an anticodon appearing
// several times are summed. Anticodons are normalized to capital DNA
// letters.
func Parse(page string) ([]GeneCopyNumber, error) {
	text := tagRe.ReplaceAllString(page, " ")
	text = strings.Replace(text, "&nbsp;", " ", -1)
	fields := strings.Fields(text)

	counts := make(map[string]float64)
	for i := 0; i+1 < len(fields); i++ {
		if !antiRe.MatchString(fields[i]) {
			continue
		}
		gcn, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			continue
		}
		anti := strings.Replace(fields[i], "U", "T", -1)
		counts[anti] += gcn
		i++
	}
	if len(counts) == 0 {
		return nil, errors.New("no tRNA gene counts found")
	}

	tgcn := make([]GeneCopyNumber, 0, len(counts))
	for anti, gcn := range counts {
		tgcn = append(tgcn, GeneCopyNumber{AntiCodon: anti, GCN: gcn})
	}
	sort.Slice(tgcn, func(i, j int) bool { return tgcn[i].AntiCodon < tgcn[j].AntiCodon })
	return tgcn, nil
}
