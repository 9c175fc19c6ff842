package testutil

import (
	"os"
	"path"

	"github.com/scieloorg/oai-pmh/util"
)

var TempDir, _ = os.MkdirTemp("", "oai-pmh-test")

func PathToTestData() string {
	return path.Join(util.ProjectRoot(), "testdata")
}

// PathToCatalogFixture returns the path to a catalog API fixture.
func PathToCatalogFixture(filename string) string {
	return path.Join(PathToTestData(), "catalog", filename)
}

// ReadCatalogFixture returns the contents of a catalog API fixture.
// It panics if the file can't be read.
func ReadCatalogFixture(filename string) []byte {
	data, err := os.ReadFile(PathToCatalogFixture(filename))
	if err != nil {
		panic(err)
	}
	return data
}
