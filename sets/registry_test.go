package sets_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/scieloorg/oai-pmh/datastore"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/sets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	datastore.DataStore
}

func (s failingStore) GetJournal(ctx context.Context, issn string) (oai.Journal, error) {
	return oai.Journal{}, fmt.Errorf("catalog is down")
}

func (s failingStore) ListJournals(ctx context.Context, offset, count int) ([]oai.Journal, error) {
	return nil, fmt.Errorf("catalog is down")
}

func getRegistry() *sets.Registry {
	store := datastore.NewInMemory()
	for i := 1; i <= 5; i++ {
		store.AddJournal(oai.Journal{Title: fmt.Sprintf("Journal %d", i), LeadISSN: fmt.Sprintf("0000-000%d", i)})
	}
	registry := sets.NewRegistry(store)
	registry.Add(oai.Set{SetSpec: "openaire", SetName: "OpenAIRE"}, datastore.IdentityView)
	registry.Add(oai.Set{SetSpec: "static2", SetName: "Static 2"}, datastore.FilteredView("code_title", "0000-0002"))
	return registry
}

func specs(list []oai.Set) []string {
	result := make([]string, len(list))
	for i, s := range list {
		result[i] = s.SetSpec
	}
	return result
}

func TestVirtualOffset(t *testing.T) {
	type Item struct {
		Size     int
		Offset   int
		Expected int
	}
	items := []Item{
		{0, 0, 0},
		{0, 7, 7},
		{2, 0, 0},
		{2, 1, 0},
		{2, 2, 0},
		{2, 3, 1},
		{2, 10, 8},
	}
	for _, item := range items {
		assert.Equal(t, item.Expected, sets.VirtualOffset(item.Size, item.Offset), fmt.Sprintf("%d/%d", item.Size, item.Offset))
	}
}

func TestRegistryList(t *testing.T) {
	registry := getRegistry()
	ctx := context.Background()

	type Item struct {
		Offset int
		Count  int
		Specs  []string
	}
	items := []Item{
		{0, 1, []string{"openaire"}},
		{0, 2, []string{"openaire", "static2"}},
		{0, 4, []string{"openaire", "static2", "0000-0001", "0000-0002"}},
		{1, 3, []string{"static2", "0000-0001", "0000-0002"}},
		{2, 2, []string{"0000-0001", "0000-0002"}},
		{4, 10, []string{"0000-0003", "0000-0004", "0000-0005"}},
		{7, 10, []string{}},
	}
	for _, item := range items {
		list, err := registry.List(ctx, item.Offset, item.Count)
		require.Nil(t, err)
		assert.Equal(t, item.Specs, specs(list), fmt.Sprintf("%d/%d", item.Offset, item.Count))
	}
}

func TestRegistryListJournalNames(t *testing.T) {
	list, err := getRegistry().List(context.Background(), 2, 1)
	require.Nil(t, err)
	assert.Equal(t, []oai.Set{{SetSpec: "0000-0001", SetName: "Journal 1"}}, list)
}

func TestRegistryAddReplaces(t *testing.T) {
	registry := getRegistry()
	registry.Add(oai.Set{SetSpec: "openaire", SetName: "Renamed"}, datastore.IdentityView)
	assert.Equal(t, 2, registry.StaticSize())

	list, err := registry.List(context.Background(), 0, 2)
	require.Nil(t, err)
	assert.Equal(t, []oai.Set{{SetSpec: "openaire", SetName: "Renamed"}, {SetSpec: "static2", SetName: "Static 2"}}, list)
}

func TestRegistryGetView(t *testing.T) {
	registry := getRegistry()
	ctx := context.Background()
	q := datastore.Query{Offset: 5, Count: 10}

	view, ok, err := registry.GetView(ctx, "openaire")
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, q, view(q))

	view, ok, err = registry.GetView(ctx, "static2")
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"code_title": "0000-0002"}, view(q).Filters)

	view, ok, err = registry.GetView(ctx, "0000-0004")
	require.Nil(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"code_title": "0000-0004"}, view(q).Filters)

	view, ok, err = registry.GetView(ctx, "9999-9999")
	require.Nil(t, err)
	assert.False(t, ok)
	assert.Nil(t, view)
}

func TestRegistryDataStoreFailure(t *testing.T) {
	registry := sets.NewRegistry(failingStore{})
	registry.Add(oai.Set{SetSpec: "openaire", SetName: "OpenAIRE"}, datastore.IdentityView)
	ctx := context.Background()

	// Static sets alone are enough here.
	list, err := registry.List(ctx, 0, 1)
	require.Nil(t, err)
	assert.Equal(t, 1, len(list))

	_, err = registry.List(ctx, 0, 5)
	assert.NotNil(t, err)

	view, ok, err := registry.GetView(ctx, "openaire")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.NotNil(t, view)

	_, ok, err = registry.GetView(ctx, "0000-0001")
	assert.NotNil(t, err)
	assert.False(t, ok)
}
