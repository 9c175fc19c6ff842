package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/scieloorg/oai-pmh/models/catalog"
)

// CatalogClient supports the read-only calls of the catalog REST API
// that feed the data provider: single articles and journals, and
// paged listings of both.
type CatalogClient struct {
	HostURL    string
	Collection string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewCatalogClient creates a new catalog client. Param hostURL is the
// base URL of the catalog (no trailing /api). Requests that take longer
// than timeout are aborted. A zero timeout means no timeout.
func NewCatalogClient(hostURL, collection string, timeout time.Duration, logger *logging.Logger) *CatalogClient {
	transport := &http.Transport{
		DisableKeepAlives: false,
		ForceAttemptHTTP2: true,
	}
	return &CatalogClient{
		HostURL:    strings.TrimSuffix(hostURL, "/"),
		Collection: collection,
		logger:     logger,
		httpClient: &http.Client{Transport: transport, Timeout: timeout},
	}
}

// Article returns the article with the specified code (PID). The
// catalog answers requests for unknown codes with either a 404 or an
// empty document, and both are reported through ObjectNotFound().
func (client *CatalogClient) Article(ctx context.Context, code string) *CatalogResponse {
	resp := NewCatalogResponse(CatalogArticle)
	resp.articles = make([]*catalog.Article, 1)

	params := url.Values{}
	params.Set("code", code)
	absoluteURL := client.BuildURL("/api/v1/article/", params)

	client.DoRequest(ctx, resp, "GET", absoluteURL, nil)
	if resp.notFound || resp.Error != nil {
		return resp
	}

	data, _ := resp.RawResponseData()
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		resp.notFound = true
		return resp
	}
	article, err := catalog.ArticleFromJson(data)
	resp.Error = err
	if err == nil {
		if article.IsSpurious() {
			resp.notFound = true
		}
		resp.articles[0] = article
	}
	return resp
}

// ArticleList returns a page of articles. Params include:
//
// from
// until
// offset
// limit
// extra_filter (JSON object, e.g. {"code_title": "0034-8910"})
func (client *CatalogClient) ArticleList(ctx context.Context, params url.Values) *CatalogResponse {
	resp := NewCatalogResponse(CatalogArticle)
	resp.articles = make([]*catalog.Article, 0)

	absoluteURL := client.BuildURL("/api/v1/articles/", params)
	client.DoRequest(ctx, resp, "GET", absoluteURL, nil)
	if resp.Error != nil {
		return resp
	}
	resp.UnmarshalJSONList()
	return resp
}

// Journal returns the journal whose SciELO ISSN is issn.
func (client *CatalogClient) Journal(ctx context.Context, issn string) *CatalogResponse {
	resp := NewCatalogResponse(CatalogJournal)
	resp.journals = make([]*catalog.Journal, 1)

	params := url.Values{}
	params.Set("issn", issn)
	absoluteURL := client.BuildURL("/api/v1/journal/", params)

	client.DoRequest(ctx, resp, "GET", absoluteURL, nil)
	if resp.notFound || resp.Error != nil {
		return resp
	}

	data, _ := resp.RawResponseData()
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		resp.notFound = true
		return resp
	}
	journal, err := catalog.JournalFromJson(data)
	resp.Error = err
	if err == nil {
		if journal.ScieloISSN == "" {
			resp.notFound = true
		}
		resp.journals[0] = journal
	}
	return resp
}

// JournalList returns a page of journals. Params are offset and limit.
func (client *CatalogClient) JournalList(ctx context.Context, params url.Values) *CatalogResponse {
	resp := NewCatalogResponse(CatalogJournal)
	resp.journals = make([]*catalog.Journal, 0)

	absoluteURL := client.BuildURL("/api/v1/journals/", params)
	client.DoRequest(ctx, resp, "GET", absoluteURL, nil)
	if resp.Error != nil {
		return resp
	}
	resp.UnmarshalJSONList()
	return resp
}

// PageParams returns the offset/limit params for list requests.
func PageParams(offset, limit int) url.Values {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))
	return params
}

// FilterParam encodes filters as the JSON object the catalog expects
// in its extra_filter param.
func FilterParam(filters map[string]string) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BuildURL combines the host and relative URL, adding the collection
// to params.
func (client *CatalogClient) BuildURL(relativeURL string, params url.Values) string {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	if client.Collection != "" {
		query.Set("collection", client.Collection)
	}
	return fmt.Sprintf("%s%s?%s", client.HostURL, relativeURL, encodeParams(query))
}

// NewJSONRequest returns a new request with headers indicating
// JSON request and response formats.
func (client *CatalogClient) NewJSONRequest(ctx context.Context, method, absoluteURL string, requestData io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, absoluteURL, requestData)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Connection", "Keep-Alive")
	return req, nil
}

// DoRequest issues an HTTP request, reads the response, and closes the
// connection to the remote server. A 404 marks the response as not
// found. Other errors are recorded in resp.Error as *HttpError.
func (client *CatalogClient) DoRequest(ctx context.Context, resp *CatalogResponse, method, absoluteURL string, requestData io.Reader) {
	request, err := client.NewJSONRequest(ctx, method, absoluteURL, requestData)
	resp.Request = request
	if err != nil {
		resp.Error = NewHttpError(fmt.Sprintf("%s %s: %s", method, absoluteURL, err.Error()), err, method, absoluteURL, 0)
		return
	}

	reqTime := time.Now()
	resp.Response, err = client.httpClient.Do(request)
	client.logger.Debugf("%s %s completed in %s", method, absoluteURL, time.Since(reqTime))
	if err != nil {
		resp.Error = NewHttpError(fmt.Sprintf("%s %s: %s", method, absoluteURL, err.Error()), err, method, absoluteURL, 0)
		return
	}

	// Always read and close the body, or the connection stays open.
	resp.readResponse()

	if resp.Error == nil && resp.Response.StatusCode == http.StatusNotFound {
		resp.notFound = true
		return
	}
	if resp.Error == nil && resp.Response.StatusCode >= 400 {
		body, _ := resp.RawResponseData()
		resp.Error = NewHttpError(
			fmt.Sprintf("Server returned status code %d. %s %s - Body: %s",
				resp.Response.StatusCode, method, absoluteURL, string(body)),
			nil, method, absoluteURL, resp.Response.StatusCode)
	}
}

func encodeParams(params url.Values) string {
	if params == nil {
		return ""
	}
	return params.Encode()
}
