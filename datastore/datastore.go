// Package datastore holds the sources the provider reads resources and
// journals from. Every implementation reports missing items with an
// error wrapping ErrDoesNotExist.
package datastore

import (
	"context"
	"errors"

	"github.com/scieloorg/oai-pmh/models/oai"
)

var ErrDoesNotExist = errors.New("does not exist")

type DataStore interface {
	// Get returns the resource with the given ridentifier.
	Get(ctx context.Context, id string) (oai.Resource, error)

	// List returns at most count resources, skipping the first offset,
	// whose datestamps fall within [from, until] (YYYY-MM-DD, inclusive,
	// empty means unbounded) and that pass view.
	List(ctx context.Context, offset, count int, view View, from, until string) ([]oai.Resource, error)

	GetJournal(ctx context.Context, issn string) (oai.Journal, error)
	ListJournals(ctx context.Context, offset, count int) ([]oai.Journal, error)
}

// IsDoesNotExist returns true if err reports a missing item.
func IsDoesNotExist(err error) bool {
	return errors.Is(err, ErrDoesNotExist)
}
