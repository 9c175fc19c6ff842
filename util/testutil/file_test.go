package testutil_test

import (
	"strings"
	"testing"

	"github.com/scieloorg/oai-pmh/util/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPathToTestData(t *testing.T) {
	assert.True(t, strings.HasSuffix(testutil.PathToTestData(), "testdata"))
}

func TestPathToCatalogFixture(t *testing.T) {
	p := testutil.PathToCatalogFixture("journal_0034-8910.json")
	assert.True(t, strings.Contains(p, "testdata"))
	assert.True(t, strings.Contains(p, "catalog"))
	assert.True(t, strings.HasSuffix(p, "journal_0034-8910.json"))
}

func TestReadCatalogFixture(t *testing.T) {
	data := testutil.ReadCatalogFixture("journal_0034-8910.json")
	assert.Contains(t, string(data), "scielo_issn")
	assert.Panics(t, func() { testutil.ReadCatalogFixture("no-such-file.json") })
}
