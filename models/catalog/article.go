package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/util"
)

type Author struct {
	Surname    string `json:"surname"`
	GivenNames string `json:"given_names"`
}

// Article is an article record as served by the catalog API.
type Article struct {
	Code                string              `json:"code"`
	Collection          string              `json:"collection"`
	ProcessingDate      string              `json:"processing_date"`
	PublicationDate     string              `json:"publication_date"`
	ISSN                string              `json:"issn"`
	OriginalLanguage    string              `json:"original_language"`
	OriginalTitle       string              `json:"original_title"`
	TranslatedTitles    map[string]string   `json:"translated_titles,omitempty"`
	Authors             []Author            `json:"authors,omitempty"`
	Keywords            map[string][]string `json:"keywords,omitempty"`
	OriginalAbstract    string              `json:"original_abstract"`
	TranslatedAbstracts map[string]string   `json:"translated_abstracts,omitempty"`
	PublisherName       string              `json:"publisher_name"`
	DocumentType        string              `json:"document_type"`
	HTMLURL             string              `json:"html_url"`
	BibliographicLegend string              `json:"bibliographic_legend"`
	LicenseURL          string              `json:"license_url"`
}

func ArticleFromJson(jsonData []byte) (*Article, error) {
	article := &Article{}
	err := json.Unmarshal(jsonData, article)
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (article *Article) ToJson() ([]byte, error) {
	bytes, err := json.Marshal(article)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

// IsSpurious returns true for the empty placeholder documents the
// catalog returns when asked for an article it does not have.
func (article *Article) IsSpurious() bool {
	return article.Code == "" || article.OriginalLanguage == ""
}

// ToResource maps the article onto an OAI-PMH resource. Maps in the
// catalog record are emitted in language order so output is stable.
func (article *Article) ToResource() (oai.Resource, error) {
	datestamp, err := util.ParseDate(article.ProcessingDate)
	if err != nil {
		return oai.Resource{}, fmt.Errorf("article %s: bad processing_date: %w", article.Code, err)
	}
	res := oai.Resource{
		Ridentifier: article.Code,
		Datestamp:   datestamp,
		SetSpec:     []string{article.ISSN},
		Title:       article.titles(),
		Creator:     article.creators(),
		Subject:     article.subjects(),
		Description: article.descriptions(),
		Publisher:   []string{article.PublisherName},
		Contributor: []string{},
		Type:        []string{article.DocumentType},
		Format:      []string{"text/html"},
		Identifier:  []string{article.HTMLURL},
		Source:      []string{article.BibliographicLegend},
		Language:    []string{article.OriginalLanguage},
		Relation:    []string{},
		Rights:      []string{article.LicenseURL},
	}
	if article.PublicationDate != "" {
		pubDate, err := util.ParseDate(article.PublicationDate)
		if err != nil {
			return oai.Resource{}, fmt.Errorf("article %s: bad publication_date: %w", article.Code, err)
		}
		res.Date = []time.Time{pubDate}
	}
	return res, nil
}

func (article *Article) titles() []oai.LangValue {
	titles := []oai.LangValue{{Lang: article.OriginalLanguage, Value: article.OriginalTitle}}
	return append(titles, sortedLangValues(article.TranslatedTitles)...)
}

func (article *Article) descriptions() []oai.LangValue {
	abstracts := []oai.LangValue{{Lang: article.OriginalLanguage, Value: article.OriginalAbstract}}
	return append(abstracts, sortedLangValues(article.TranslatedAbstracts)...)
}

func (article *Article) creators() []string {
	creators := make([]string, len(article.Authors))
	for i, author := range article.Authors {
		creators[i] = author.Surname + ", " + author.GivenNames
	}
	return creators
}

func (article *Article) subjects() []oai.LangValue {
	subjects := make([]oai.LangValue, 0)
	for _, lang := range sortedKeys(article.Keywords) {
		for _, keyword := range article.Keywords[lang] {
			subjects = append(subjects, oai.LangValue{Lang: lang, Value: keyword})
		}
	}
	return subjects
}

func sortedLangValues(values map[string]string) []oai.LangValue {
	result := make([]oai.LangValue, 0, len(values))
	for _, lang := range sortedKeys(values) {
		result = append(result, oai.LangValue{Lang: lang, Value: values[lang]})
	}
	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
