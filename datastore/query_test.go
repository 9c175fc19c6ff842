package datastore_test

import (
	"testing"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/datastore"
	"github.com/scieloorg/oai-pmh/util/testutil"
	"github.com/stretchr/testify/assert"
)

func TestQueryMatches(t *testing.T) {
	res := testutil.GetResource("S0001", "0034-8910", "2009-08-14")

	type Item struct {
		Name    string
		Query   datastore.Query
		Matches bool
	}
	items := []Item{
		{"empty", datastore.Query{}, true},
		{"from equal", datastore.Query{From: "2009-08-14"}, true},
		{"until equal", datastore.Query{Until: "2009-08-14"}, true},
		{"from after", datastore.Query{From: "2009-08-15"}, false},
		{"until before", datastore.Query{Until: "2009-08-13"}, false},
		{"journal", datastore.Query{Filters: map[string]string{constants.FilterJournal: "0034-8910"}}, true},
		{"other journal", datastore.Query{Filters: map[string]string{constants.FilterJournal: "1517-8382"}}, false},
		{"unknown filter", datastore.Query{Filters: map[string]string{"color": "blue"}}, false},
	}
	for _, item := range items {
		assert.Equal(t, item.Matches, item.Query.Matches(res), item.Name)
	}
}

func TestQueryWithFilter(t *testing.T) {
	q := datastore.Query{Filters: map[string]string{"a": "1"}}
	filtered := q.WithFilter("b", "2")
	assert.Equal(t, map[string]string{"a": "1"}, q.Filters)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, filtered.Filters)
}

func TestViews(t *testing.T) {
	q := datastore.Query{Offset: 10, Count: 5, From: "2000-01-01"}
	assert.Equal(t, q, datastore.IdentityView(q))

	viewed := datastore.JournalView("0034-8910")(q)
	assert.Equal(t, 10, viewed.Offset)
	assert.Equal(t, 5, viewed.Count)
	assert.Equal(t, "2000-01-01", viewed.From)
	assert.Equal(t, map[string]string{constants.FilterJournal: "0034-8910"}, viewed.Filters)
	assert.Nil(t, q.Filters)
}
