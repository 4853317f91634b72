package gtrnadb

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// disable logging for tests
	logging.SetLevel(logging.ERROR, "gtrnadb")
}

const genePage = `<html><body>
<h1>tRNA gene counts</h1>
<table>
<tr><th>Isotype</th><th>Anticodon</th><th>Count</th></tr>
<tr><td>Ala</td><td>AGC</td><td>7</td></tr>
<tr><td>Ala</td><td>CGC</td><td>5</td></tr>
<tr><td>Cys</td><td>UGC</td><td>3</td></tr>
<tr><td>Ala</td><td>AGC</td><td>3</td></tr>
</table>
</body></html>`

func TestParse(tst *testing.T) {
	tgcn, err := Parse(genePage)
	require.NoError(tst, err)

	// duplicate AGC rows are summed, UGC ends up as DNA
	assert.Equal(tst, []GeneCopyNumber{
		{AntiCodon: "AGC", GCN: 10},
		{AntiCodon: "CGC", GCN: 5},
		{AntiCodon: "TGC", GCN: 3},
	}, tgcn)
}

func TestParseNoCounts(tst *testing.T) {
	_, err := Parse("<html><body><p>Nothing to see here</p></body></html>")
	assert.Error(tst, err)
}

func TestGenomeURL(tst *testing.T) {
	assert.Equal(tst, "http://gtrnadb.ucsc.edu/genomes/eukaryota/Scere3/",
		GenomeURL("eukaryota", "Scere3"))
}

func TestFetchClient(tst *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(genePage))
	}))
	defer srv.Close()

	tgcn, err := FetchClient(srv.Client(), srv.URL)
	require.NoError(tst, err)
	assert.Len(tst, tgcn, 3)
}

func TestFetchClientNotFound(tst *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := FetchClient(srv.Client(), srv.URL)
	assert.Error(tst, err)
}

func TestCacheRoundTrip(tst *testing.T) {
	cache, err := NewCache(filepath.Join(tst.TempDir(), "gcn.db"))
	require.NoError(tst, err)
	defer cache.Close()

	miss, err := cache.Get("http://example.com/")
	require.NoError(tst, err)
	assert.Nil(tst, miss)

	tgcn := []GeneCopyNumber{{AntiCodon: "AGC", GCN: 10}}
	require.NoError(tst, cache.Put("http://example.com/", tgcn))

	hit, err := cache.Get("http://example.com/")
	require.NoError(tst, err)
	assert.Equal(tst, tgcn, hit)
}

func TestFetchCached(tst *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(genePage))
	}))

	cache, err := NewCache(filepath.Join(tst.TempDir(), "gcn.db"))
	require.NoError(tst, err)
	defer cache.Close()

	fetched, err := FetchCached(cache, srv.URL)
	require.NoError(tst, err)
	assert.Len(tst, fetched, 3)

	// the second call must come from the cache: the server is gone
	srv.Close()
	cached, err := FetchCached(cache, srv.URL)
	require.NoError(tst, err)
	assert.Equal(tst, fetched, cached)
}
