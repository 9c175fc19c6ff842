package datastore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/op/go-logging"
	"github.com/scieloorg/oai-pmh/models/oai"
)

// JournalCache stores journals between requests. network.RedisClient
// and LRUJournalCache implement it.
type JournalCache interface {
	JournalGet(issn string) (oai.Journal, bool, error)
	JournalSave(journal oai.Journal) error
}

// CachedStore wraps a DataStore and serves GetJournal from a cache.
// Set resolution looks up a journal on every request that names a
// set, which is what makes caching worthwhile. Cache failures are
// logged and otherwise ignored.
type CachedStore struct {
	DataStore
	cache  JournalCache
	logger *logging.Logger
}

func NewCachedStore(store DataStore, cache JournalCache, logger *logging.Logger) *CachedStore {
	return &CachedStore{
		DataStore: store,
		cache:     cache,
		logger:    logger,
	}
}

func (store *CachedStore) GetJournal(ctx context.Context, issn string) (oai.Journal, error) {
	journal, ok, err := store.cache.JournalGet(issn)
	if err != nil {
		store.logger.Warningf("Journal cache get %s: %v", issn, err)
	} else if ok {
		return journal, nil
	}
	journal, err = store.DataStore.GetJournal(ctx, issn)
	if err != nil {
		return journal, err
	}
	store.save(journal)
	return journal, nil
}

// ListJournals passes through to the underlying store and warms the
// cache with the journals it returns.
func (store *CachedStore) ListJournals(ctx context.Context, offset, count int) ([]oai.Journal, error) {
	journals, err := store.DataStore.ListJournals(ctx, offset, count)
	if err != nil {
		return nil, err
	}
	for _, journal := range journals {
		store.save(journal)
	}
	return journals, nil
}

func (store *CachedStore) save(journal oai.Journal) {
	if err := store.cache.JournalSave(journal); err != nil {
		store.logger.Warningf("Journal cache save %s: %v", journal.LeadISSN, err)
	}
}

// LRUJournalCache is an in-process JournalCache holding at most size
// journals, each for at most ttl. Zero ttl means no expiry.
type LRUJournalCache struct {
	cache *expirable.LRU[string, oai.Journal]
}

func NewLRUJournalCache(size int, ttl time.Duration) *LRUJournalCache {
	return &LRUJournalCache{
		cache: expirable.NewLRU[string, oai.Journal](size, nil, ttl),
	}
}

func (c *LRUJournalCache) JournalGet(issn string) (oai.Journal, bool, error) {
	journal, ok := c.cache.Get(issn)
	return journal, ok, nil
}

func (c *LRUJournalCache) JournalSave(journal oai.Journal) error {
	c.cache.Add(journal.LeadISSN, journal)
	return nil
}

func (c *LRUJournalCache) Len() int {
	return c.cache.Len()
}
