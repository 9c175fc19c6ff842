package datastore

import (
	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
)

// Query describes one page of a resource listing.
type Query struct {
	Offset  int
	Count   int
	From    string
	Until   string
	Filters map[string]string
}

// WithFilter returns a copy of q with key set to value. The receiver's
// filters are left untouched.
func (q Query) WithFilter(key, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	q.Filters = filters
	return q
}

// Matches returns true if res falls inside the query's date range and
// passes all of its filters. Unknown filter keys never match.
func (q Query) Matches(res oai.Resource) bool {
	datestamp := res.Datestamp.Format(constants.DateLayout)
	if q.From != "" && datestamp < q.From {
		return false
	}
	if q.Until != "" && datestamp > q.Until {
		return false
	}
	for key, value := range q.Filters {
		switch key {
		case constants.FilterJournal:
			if !res.InSet(value) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// View narrows a query. Sets are implemented as views over the whole
// collection.
type View func(Query) Query

func IdentityView(q Query) Query {
	return q
}

// FilteredView returns a view that adds the given filter.
func FilteredView(key, value string) View {
	return func(q Query) Query {
		return q.WithFilter(key, value)
	}
}

// JournalView restricts a query to the articles of one journal.
func JournalView(issn string) View {
	return FilteredView(constants.FilterJournal, issn)
}

func newQuery(offset, count int, view View, from, until string) Query {
	q := Query{Offset: offset, Count: count, From: from, Until: until}
	if view == nil {
		return q
	}
	return view(q)
}

func page[T any](items []T, offset, count int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || count <= 0 {
		return make([]T, 0)
	}
	end := offset + count
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
