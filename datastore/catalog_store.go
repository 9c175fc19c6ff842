package datastore

import (
	"context"
	"fmt"

	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/network"
)

// CatalogStore reads articles and journals from the catalog REST API.
// Date ranges and filters are pushed down to the catalog.
type CatalogStore struct {
	client *network.CatalogClient
}

func NewCatalogStore(client *network.CatalogClient) *CatalogStore {
	return &CatalogStore{client: client}
}

func (store *CatalogStore) Get(ctx context.Context, id string) (oai.Resource, error) {
	resp := store.client.Article(ctx, id)
	if resp.Error != nil {
		return oai.Resource{}, fmt.Errorf("catalog article %s: %w", id, resp.Error)
	}
	if resp.ObjectNotFound() {
		return oai.Resource{}, fmt.Errorf("catalog article %s: %w", id, ErrDoesNotExist)
	}
	return resp.Article().ToResource()
}

func (store *CatalogStore) List(ctx context.Context, offset, count int, view View, from, until string) ([]oai.Resource, error) {
	q := newQuery(offset, count, view, from, until)
	params := network.PageParams(q.Offset, q.Count)
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.Until != "" {
		params.Set("until", q.Until)
	}
	if len(q.Filters) > 0 {
		filter, err := network.FilterParam(q.Filters)
		if err != nil {
			return nil, err
		}
		params.Set("extra_filter", filter)
	}

	resp := store.client.ArticleList(ctx, params)
	if resp.Error != nil {
		return nil, fmt.Errorf("catalog article list: %w", resp.Error)
	}
	resources := make([]oai.Resource, 0, len(resp.Articles()))
	for _, article := range resp.Articles() {
		res, err := article.ToResource()
		if err != nil {
			return nil, fmt.Errorf("catalog article %s: %w", article.Code, err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}

func (store *CatalogStore) GetJournal(ctx context.Context, issn string) (oai.Journal, error) {
	resp := store.client.Journal(ctx, issn)
	if resp.Error != nil {
		return oai.Journal{}, fmt.Errorf("catalog journal %s: %w", issn, resp.Error)
	}
	if resp.ObjectNotFound() {
		return oai.Journal{}, fmt.Errorf("catalog journal %s: %w", issn, ErrDoesNotExist)
	}
	return resp.Journal().ToJournal(), nil
}

func (store *CatalogStore) ListJournals(ctx context.Context, offset, count int) ([]oai.Journal, error) {
	resp := store.client.JournalList(ctx, network.PageParams(offset, count))
	if resp.Error != nil {
		return nil, fmt.Errorf("catalog journal list: %w", resp.Error)
	}
	journals := make([]oai.Journal, len(resp.Journals()))
	for i, journal := range resp.Journals() {
		journals[i] = journal.ToJournal()
	}
	return journals, nil
}
