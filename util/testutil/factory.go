package testutil

import (
	"fmt"
	"time"

	"github.com/scieloorg/oai-pmh/models/catalog"
	"github.com/scieloorg/oai-pmh/models/oai"
)

var Today = time.Now().UTC().Truncate(24 * time.Hour)

const (
	Collection = "scl"
	JournalISSN = "0034-8910"
	JournalTitle = "Revista de Saúde Pública"
)

// GetResource returns a fully populated resource in set issn, last
// modified on datestamp (YYYY-MM-DD).
func GetResource(id, issn, datestamp string) oai.Resource {
	ds, err := time.Parse("2006-01-02", datestamp)
	if err != nil {
		panic(err)
	}
	return oai.Resource{
		Ridentifier: id,
		Datestamp:   ds,
		SetSpec:     []string{issn},
		Title:       []oai.LangValue{{Lang: "en", Value: fmt.Sprintf("Title of %s", id)}},
		Creator:     []string{"Vieira, Francisco Cleber Sousa"},
		Subject:     []oai.LangValue{{Lang: "en", Value: "bacteria"}, {Lang: "pt", Value: "bactéria"}},
		Description: []oai.LangValue{{Lang: "en", Value: "The number of colony forming units (CFU)"}},
		Publisher:   []string{"Sociedade Brasileira de Microbiologia"},
		Contributor: []string{"Evans, R. J."},
		Date:        []time.Time{ds},
		Type:        []string{"research-article"},
		Format:      []string{"text/html"},
		Identifier:  []string{fmt.Sprintf("https://ref.scielo.org/%s", id)},
		Source:      []string{"Revista de Microbiologia v.29 n.3 1998"},
		Language:    []string{"en"},
		Relation:    []string{},
		Rights:      []string{"http://creativecommons.org/licenses/by-nc/4.0/"},
	}
}

// GetResources returns count resources in set issn, one per day
// starting at firstDay.
func GetResources(count int, issn, firstDay string) []oai.Resource {
	start, err := time.Parse("2006-01-02", firstDay)
	if err != nil {
		panic(err)
	}
	resources := make([]oai.Resource, count)
	for i := 0; i < count; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		resources[i] = GetResource(fmt.Sprintf("S%s%06d", issn, i), issn, day)
	}
	return resources
}

func GetJournal() oai.Journal {
	return oai.Journal{Title: JournalTitle, LeadISSN: JournalISSN}
}

// GetCatalogArticle returns a catalog record for an article in
// journal issn, processed on datestamp.
func GetCatalogArticle(code, issn, datestamp string) *catalog.Article {
	return &catalog.Article{
		Code:                code,
		Collection:          Collection,
		ProcessingDate:      datestamp,
		PublicationDate:     datestamp[:4],
		ISSN:                issn,
		OriginalLanguage:    "pt",
		OriginalTitle:       fmt.Sprintf("Título de %s", code),
		TranslatedTitles:    map[string]string{"en": fmt.Sprintf("Title of %s", code)},
		Authors:             []catalog.Author{{Surname: "Peres", GivenNames: "Karen Glazer"}},
		Keywords:            map[string][]string{"pt": {"Cárie Dentária"}},
		OriginalAbstract:    "Resumo",
		PublisherName:       "Faculdade de Saúde Pública",
		DocumentType:        "research-article",
		HTMLURL:             fmt.Sprintf("http://www.scielo.br/scielo.php?pid=%s", code),
		BibliographicLegend: "Rev. Saúde Pública v.43 n.4 2009",
		LicenseURL:          "http://creativecommons.org/licenses/by/4.0/",
	}
}
