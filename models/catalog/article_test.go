package catalog_test

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/scieloorg/oai-pmh/models/catalog"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/util/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadArticle(t *testing.T) *catalog.Article {
	data, err := os.ReadFile(path.Join(testutil.PathToTestData(), "catalog", "article_S0034-89102009000400003.json"))
	require.Nil(t, err)
	article, err := catalog.ArticleFromJson(data)
	require.Nil(t, err)
	return article
}

func TestArticleFromJson(t *testing.T) {
	article := loadArticle(t)
	assert.Equal(t, "S0034-89102009000400003", article.Code)
	assert.Equal(t, "0034-8910", article.ISSN)
	assert.Equal(t, 2, len(article.Authors))
	assert.Equal(t, "Karen Glazer", article.Authors[0].GivenNames)
	assert.Equal(t, 2, len(article.Keywords["en"]))
	assert.False(t, article.IsSpurious())
}

func TestArticleToJson(t *testing.T) {
	article := loadArticle(t)
	data, err := article.ToJson()
	require.Nil(t, err)
	copied, err := catalog.ArticleFromJson(data)
	require.Nil(t, err)
	assert.Equal(t, article, copied)
}

func TestArticleIsSpurious(t *testing.T) {
	assert.True(t, (&catalog.Article{}).IsSpurious())
	assert.True(t, (&catalog.Article{Code: "S0034-89102009000400003"}).IsSpurious())
}

func TestArticleToResource(t *testing.T) {
	res, err := loadArticle(t).ToResource()
	require.Nil(t, err)

	assert.Equal(t, "S0034-89102009000400003", res.Ridentifier)
	assert.Equal(t, time.Date(2009, 8, 14, 0, 0, 0, 0, time.UTC), res.Datestamp)
	assert.Equal(t, []string{"0034-8910"}, res.SetSpec)
	assert.Equal(t, []oai.LangValue{
		{Lang: "en", Value: "Association between dental caries and body mass index"},
		{Lang: "es", Value: "Asociación entre caries dental e índice de masa corporal"},
		{Lang: "pt", Value: "Associação entre cárie dentária e índice de massa corporal"},
	}, res.Title)
	assert.Equal(t, []string{"Peres, Karen Glazer", "Bastos, João Luiz"}, res.Creator)
	assert.Equal(t, []oai.LangValue{
		{Lang: "en", Value: "Dental Caries"},
		{Lang: "en", Value: "Body Mass Index"},
		{Lang: "pt", Value: "Cárie Dentária"},
	}, res.Subject)
	require.Equal(t, 2, len(res.Description))
	assert.Equal(t, "en", res.Description[0].Lang)
	assert.Equal(t, "pt", res.Description[1].Lang)
	assert.Equal(t, []string{"Faculdade de Saúde Pública da Universidade de São Paulo"}, res.Publisher)
	assert.Equal(t, []string{}, res.Contributor)
	assert.Equal(t, []time.Time{time.Date(2009, 8, 1, 0, 0, 0, 0, time.UTC)}, res.Date)
	assert.Equal(t, []string{"research-article"}, res.Type)
	assert.Equal(t, []string{"text/html"}, res.Format)
	assert.Equal(t, []string{"Rev. Saúde Pública v.43 n.4 2009"}, res.Source)
	assert.Equal(t, []string{"en"}, res.Language)
	assert.Equal(t, []string{"http://creativecommons.org/licenses/by/4.0/"}, res.Rights)
}

func TestArticleToResourceBadDate(t *testing.T) {
	article := loadArticle(t)
	article.ProcessingDate = "14/08/2009"
	_, err := article.ToResource()
	assert.NotNil(t, err)
}

func TestJournal(t *testing.T) {
	data, err := os.ReadFile(path.Join(testutil.PathToTestData(), "catalog", "journal_0034-8910.json"))
	require.Nil(t, err)
	journal, err := catalog.JournalFromJson(data)
	require.Nil(t, err)
	assert.Equal(t, oai.Journal{Title: "Revista de Saúde Pública", LeadISSN: "0034-8910"}, journal.ToJournal())

	out, err := journal.ToJson()
	require.Nil(t, err)
	assert.Equal(t, `{"title":"Revista de Saúde Pública","scielo_issn":"0034-8910","collection":"scl"}`, string(out))
}
