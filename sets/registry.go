// Package sets maps OAI-PMH sets to views over a data store. Static
// sets are registered at startup. Every journal in the data store is
// also a set, keyed by its ISSN.
package sets

import (
	"context"

	"github.com/scieloorg/oai-pmh/datastore"
	"github.com/scieloorg/oai-pmh/models/oai"
)

type staticSet struct {
	set  oai.Set
	view datastore.View
}

// Registry is not safe for concurrent Add calls. Register static sets
// before serving requests.
type Registry struct {
	ds     datastore.DataStore
	static []staticSet
}

func NewRegistry(ds datastore.DataStore) *Registry {
	return &Registry{
		ds:     ds,
		static: make([]staticSet, 0),
	}
}

// Add registers a static set. Adding a set whose SetSpec is already
// registered replaces it in place.
func (r *Registry) Add(set oai.Set, view datastore.View) {
	for i, s := range r.static {
		if s.set.SetSpec == set.SetSpec {
			r.static[i] = staticSet{set: set, view: view}
			return
		}
	}
	r.static = append(r.static, staticSet{set: set, view: view})
}

// StaticSize returns the number of static sets.
func (r *Registry) StaticSize() int {
	return len(r.static)
}

// List returns up to count sets starting at offset. Static sets come
// first. Journal sets fill whatever room the static part leaves.
func (r *Registry) List(ctx context.Context, offset, count int) ([]oai.Set, error) {
	result := make([]oai.Set, 0, count)
	for i := offset; i < len(r.static) && len(result) < count; i++ {
		if i >= 0 {
			result = append(result, r.static[i].set)
		}
	}
	if len(result) >= count {
		return result, nil
	}
	journals, err := r.ds.ListJournals(ctx, VirtualOffset(r.StaticSize(), offset), count-len(result))
	if err != nil {
		return nil, err
	}
	for _, journal := range journals {
		result = append(result, journal.Set())
	}
	return result, nil
}

// GetView returns the view for setSpec. Static sets win over journals.
// The bool is false when no set has that spec.
func (r *Registry) GetView(ctx context.Context, setSpec string) (datastore.View, bool, error) {
	for _, s := range r.static {
		if s.set.SetSpec == setSpec {
			return s.view, true, nil
		}
	}
	journal, err := r.ds.GetJournal(ctx, setSpec)
	if datastore.IsDoesNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return datastore.JournalView(journal.Set().SetSpec), true, nil
}

// VirtualOffset translates an offset into the combined static+journal
// listing into an offset into the journal listing alone.
func VirtualOffset(size, offset int) int {
	if offset-size <= 0 {
		return 0
	}
	return offset - size
}
