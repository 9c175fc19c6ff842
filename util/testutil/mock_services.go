package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"

	"github.com/scieloorg/oai-pmh/models/catalog"
)

// These functions allow us to mock http responses from the catalog.

var EmptyHeaders = make(map[string]string, 0)

// Returns an http handler function that returns the contents
// of the specified file, along with the specified headers.
func HttpFileResponder(headers map[string]string, filePath string) http.HandlerFunc {
	f := func(w http.ResponseWriter, r *http.Request) {
		setHeaders(w, headers)
		f, err := os.Open(filePath)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		io.Copy(w, f)
	}
	return http.HandlerFunc(f)
}

// Returns an http handler function that returns the specified
// string, along with the specified headers.
func HttpStringResponder(headers map[string]string, data string) http.HandlerFunc {
	f := func(w http.ResponseWriter, r *http.Request) {
		setHeaders(w, headers)
		w.Write([]byte(data))
	}
	return http.HandlerFunc(f)
}

// Returns an http handler function that answers with status and
// an empty body.
func HttpStatusResponder(status int) http.HandlerFunc {
	f := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
	return http.HandlerFunc(f)
}

func setHeaders(w http.ResponseWriter, headers map[string]string) {
	if headers != nil {
		for key, value := range headers {
			w.Header().Set(key, value)
		}
	}
}

// CatalogServer is an in-process stand-in for the catalog REST API.
// It filters articles by processing date and journal the way the real
// catalog does, and counts the requests it receives.
type CatalogServer struct {
	Articles []*catalog.Article
	Journals []*catalog.Journal
	Requests int
	server   *httptest.Server
	URL      string
}

func NewCatalogServer(articles []*catalog.Article, journals []*catalog.Journal) *CatalogServer {
	s := &CatalogServer{
		Articles: articles,
		Journals: journals,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/article/", s.article)
	mux.HandleFunc("/api/v1/articles/", s.articles)
	mux.HandleFunc("/api/v1/journal/", s.journal)
	mux.HandleFunc("/api/v1/journals/", s.journals)
	s.server = httptest.NewServer(mux)
	s.URL = s.server.URL
	return s
}

func (s *CatalogServer) Close() {
	s.server.Close()
}

// article mimics the catalog, which returns an empty document
// rather than a 404 for unknown codes.
func (s *CatalogServer) article(w http.ResponseWriter, r *http.Request) {
	s.Requests++
	code := r.URL.Query().Get("code")
	for _, a := range s.Articles {
		if a.Code == code {
			writeJson(w, a)
			return
		}
	}
	w.Write([]byte("{}"))
}

func (s *CatalogServer) articles(w http.ResponseWriter, r *http.Request) {
	s.Requests++
	q := r.URL.Query()
	from, until := q.Get("from"), q.Get("until")
	filters := make(map[string]string)
	if extra := q.Get("extra_filter"); extra != "" {
		if err := json.Unmarshal([]byte(extra), &filters); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	matches := make([]*catalog.Article, 0)
	for _, a := range s.Articles {
		if from != "" && a.ProcessingDate < from {
			continue
		}
		if until != "" && a.ProcessingDate > until {
			continue
		}
		if issn, ok := filters["code_title"]; ok && a.ISSN != issn {
			continue
		}
		matches = append(matches, a)
	}
	offset, limit := pageArgs(q.Get("offset"), q.Get("limit"), len(matches))
	writeJson(w, listEnvelope(len(matches), offset, limit, pageOf(matches, offset, limit)))
}

func (s *CatalogServer) journal(w http.ResponseWriter, r *http.Request) {
	s.Requests++
	issn := r.URL.Query().Get("issn")
	for _, j := range s.Journals {
		if j.ScieloISSN == issn {
			writeJson(w, j)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *CatalogServer) journals(w http.ResponseWriter, r *http.Request) {
	s.Requests++
	q := r.URL.Query()
	offset, limit := pageArgs(q.Get("offset"), q.Get("limit"), len(s.Journals))
	writeJson(w, listEnvelope(len(s.Journals), offset, limit, pageOf(s.Journals, offset, limit)))
}

func pageArgs(offsetParam, limitParam string, total int) (int, int) {
	offset, err := strconv.Atoi(offsetParam)
	if err != nil || offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit < 0 {
		limit = total
	}
	return offset, limit
}

func pageOf[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return make([]T, 0)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func listEnvelope(total, offset, limit int, objects interface{}) map[string]interface{} {
	return map[string]interface{}{
		"meta": map[string]int{
			"total":  total,
			"offset": offset,
			"limit":  limit,
		},
		"objects": objects,
	}
}

func writeJson(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
