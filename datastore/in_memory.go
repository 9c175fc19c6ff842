package datastore

import (
	"context"
	"fmt"
	"sync"

	"github.com/scieloorg/oai-pmh/models/oai"
)

// InMemory keeps resources and journals in insertion order. It is
// safe for concurrent use.
type InMemory struct {
	mutex        sync.RWMutex
	resources    []oai.Resource
	index        map[string]int
	journals     []oai.Journal
	journalIndex map[string]int
}

func NewInMemory() *InMemory {
	return &InMemory{
		resources:    make([]oai.Resource, 0),
		index:        make(map[string]int),
		journals:     make([]oai.Journal, 0),
		journalIndex: make(map[string]int),
	}
}

// Add stores res, replacing any resource with the same ridentifier
// in place.
func (store *InMemory) Add(res oai.Resource) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if i, ok := store.index[res.Ridentifier]; ok {
		store.resources[i] = res.Copy()
		return
	}
	store.index[res.Ridentifier] = len(store.resources)
	store.resources = append(store.resources, res.Copy())
}

// AddJournal stores journal, replacing any journal with the same
// ISSN in place.
func (store *InMemory) AddJournal(journal oai.Journal) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if i, ok := store.journalIndex[journal.LeadISSN]; ok {
		store.journals[i] = journal
		return
	}
	store.journalIndex[journal.LeadISSN] = len(store.journals)
	store.journals = append(store.journals, journal)
}

func (store *InMemory) Get(ctx context.Context, id string) (oai.Resource, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	i, ok := store.index[id]
	if !ok {
		return oai.Resource{}, fmt.Errorf("resource %s: %w", id, ErrDoesNotExist)
	}
	return store.resources[i].Copy(), nil
}

func (store *InMemory) List(ctx context.Context, offset, count int, view View, from, until string) ([]oai.Resource, error) {
	q := newQuery(offset, count, view, from, until)
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	matches := make([]oai.Resource, 0)
	for _, res := range store.resources {
		if q.Matches(res) {
			matches = append(matches, res)
		}
	}
	selected := page(matches, q.Offset, q.Count)
	results := make([]oai.Resource, len(selected))
	for i, res := range selected {
		results[i] = res.Copy()
	}
	return results, nil
}

func (store *InMemory) GetJournal(ctx context.Context, issn string) (oai.Journal, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	i, ok := store.journalIndex[issn]
	if !ok {
		return oai.Journal{}, fmt.Errorf("journal %s: %w", issn, ErrDoesNotExist)
	}
	return store.journals[i], nil
}

func (store *InMemory) ListJournals(ctx context.Context, offset, count int) ([]oai.Journal, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	selected := page(store.journals, offset, count)
	results := make([]oai.Journal, len(selected))
	copy(results, selected)
	return results, nil
}
