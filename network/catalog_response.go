package network

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/scieloorg/oai-pmh/models/catalog"
)

type CatalogResponse struct {
	// Total is the number of items matching the request filters.
	// The page in Objects may hold fewer.
	Total int

	// Offset and Limit echo the paging the catalog applied.
	Offset int
	Limit  int

	// The HTTP request that was (or would have been) sent to
	// the catalog. Useful for logging and debugging.
	Request *http.Request

	// The HTTP Response from the server. Do not read Response.Body,
	// it has already been read and closed. Use RawResponseData().
	Response *http.Response

	// The error, if any, that occurred while processing this
	// request. A 404 is not an error. See ObjectNotFound().
	Error error

	objectType CatalogObjectType

	articles []*catalog.Article
	journals []*catalog.Journal

	notFound          bool
	hasBeenRead       bool
	listHasBeenParsed bool

	data []byte
}

type CatalogObjectType string

const (
	CatalogArticle CatalogObjectType = "Article"
	CatalogJournal CatalogObjectType = "Journal"
)

func NewCatalogResponse(objType CatalogObjectType) *CatalogResponse {
	return &CatalogResponse{
		objectType: objType,
	}
}

// Returns the raw body of the HTTP response as a byte slice.
// The return value may be nil.
func (resp *CatalogResponse) RawResponseData() ([]byte, error) {
	if !resp.hasBeenRead {
		resp.readResponse()
	}
	return resp.data, resp.Error
}

func (resp *CatalogResponse) readResponse() {
	if !resp.hasBeenRead && resp.Response != nil && resp.Response.Body != nil {
		resp.data, resp.Error = io.ReadAll(resp.Response.Body)
		resp.Response.Body.Close()
		resp.hasBeenRead = true
	}
}

// ObjectNotFound returns true if the catalog replied with 404, or with
// an empty or placeholder document for a single-object request.
func (resp *CatalogResponse) ObjectNotFound() bool {
	return resp.notFound
}

func (resp *CatalogResponse) ObjectType() CatalogObjectType {
	return resp.objectType
}

// Article returns the first article in the response, or nil.
func (resp *CatalogResponse) Article() *catalog.Article {
	if resp.articles != nil && len(resp.articles) > 0 {
		return resp.articles[0]
	}
	return nil
}

func (resp *CatalogResponse) Articles() []*catalog.Article {
	if resp.articles == nil {
		return make([]*catalog.Article, 0)
	}
	return resp.articles
}

// Journal returns the first journal in the response, or nil.
func (resp *CatalogResponse) Journal() *catalog.Journal {
	if resp.journals != nil && len(resp.journals) > 0 {
		return resp.journals[0]
	}
	return nil
}

func (resp *CatalogResponse) Journals() []*catalog.Journal {
	if resp.journals == nil {
		return make([]*catalog.Journal, 0)
	}
	return resp.journals
}

type listMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// UnmarshalJSONList converts JSON response from the catalog server
// into a list of usable objects. The list response has this
// structure:
//
//	{
//	  "meta": {"total": 500, "offset": 100, "limit": 100},
//	  "objects": [... array of articles or journals ...]
//	}
func (resp *CatalogResponse) UnmarshalJSONList() error {
	switch resp.objectType {
	case CatalogArticle:
		return resp.decodeAsArticleList()
	case CatalogJournal:
		return resp.decodeAsJournalList()
	default:
		return fmt.Errorf("CatalogObjectType %v not supported", resp.objectType)
	}
}

func (resp *CatalogResponse) decodeAsArticleList() error {
	if resp.listHasBeenParsed {
		return nil
	}
	temp := struct {
		Meta    listMeta           `json:"meta"`
		Objects []*catalog.Article `json:"objects"`
	}{}
	data, err := resp.RawResponseData()
	if err != nil {
		resp.Error = err
		return err
	}
	resp.Error = json.Unmarshal(data, &temp)
	resp.setMeta(temp.Meta)
	resp.articles = temp.Objects
	resp.listHasBeenParsed = true
	return resp.Error
}

func (resp *CatalogResponse) decodeAsJournalList() error {
	if resp.listHasBeenParsed {
		return nil
	}
	temp := struct {
		Meta    listMeta           `json:"meta"`
		Objects []*catalog.Journal `json:"objects"`
	}{}
	data, err := resp.RawResponseData()
	if err != nil {
		resp.Error = err
		return err
	}
	resp.Error = json.Unmarshal(data, &temp)
	resp.setMeta(temp.Meta)
	resp.journals = temp.Objects
	resp.listHasBeenParsed = true
	return resp.Error
}

func (resp *CatalogResponse) setMeta(meta listMeta) {
	resp.Total = meta.Total
	resp.Offset = meta.Offset
	resp.Limit = meta.Limit
}
