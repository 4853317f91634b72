package gtrnadb

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"
)

// bucket is the name of the bolt bucket holding fetched tables.
var bucket = []byte("gcn")

// Cache stores fetched gene copy number tables in a bolt database,
// keyed by source URL, so a model can be rebuilt without hitting the
// network.
type Cache struct {
	db *bolt.DB
}

// NewCache opens (or creates) a cache database at the given path.
func NewCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached table for a URL, nil when the URL was never
// stored.
func (c *Cache) Get(url string) ([]GeneCopyNumber, error) {
	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(url)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}

	var tgcn []GeneCopyNumber
	if err := json.Unmarshal(data, &tgcn); err != nil {
		return nil, err
	}
	return tgcn, nil
}

// Put stores the table fetched from a URL.
func (c *Cache) Put(url string, tgcn []GeneCopyNumber) error {
	data, err := json.Marshal(tgcn)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(url), data)
	})
}

// FetchCached consults the cache before going to the network and
// stores the result of a successful fetch. A nil cache is allowed and
// simply fetches.
func FetchCached(cache *Cache, url string) ([]GeneCopyNumber, error) {
	if cache != nil {
		tgcn, err := cache.Get(url)
		if err != nil {
			return nil, err
		}
		if tgcn != nil {
			log.Noticef("Found cached tRNA gene counts for %s", url)
			return tgcn, nil
		}
	}

	tgcn, err := Fetch(url)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		if err := cache.Put(url, tgcn); err != nil {
			log.Error("Error caching tRNA gene counts: ", err)
		}
	}
	return tgcn, nil
}
