package oai_test

import (
	"testing"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlainTokenFromRequest(t *testing.T) {
	req := oai.Request{
		Verb:           constants.VerbListRecords,
		MetadataPrefix: "oai_dc",
		Set:            "0001-3765",
		From:           "1998-01-01",
	}
	token, err := oai.NewPlainTokenFromRequest(req, 100)
	require.Nil(t, err)
	assert.True(t, token.IsFirstPage())
	assert.Equal(t, "0001-3765:1998-01-01::0:100:oai_dc", token.Encode())
	assert.Equal(t, 0, token.QueryOffset())
	assert.Equal(t, 100, token.QueryCount())
	assert.Equal(t, "1998-01-01", token.QueryFrom())
	assert.Equal(t, "", token.QueryUntil())
}

func TestPlainTokenFirstPage(t *testing.T) {
	token := oai.DecodePlainToken(":::0:100:")
	assert.True(t, token.IsFirstPage())
	token = oai.DecodePlainToken(":::101:100:")
	assert.False(t, token.IsFirstPage())
}

// Full pages advance the offset by count+1, one more than the
// chunked variant. Issued tokens depend on this step.
func TestPlainTokenNextSkipsOne(t *testing.T) {
	token := oai.DecodePlainToken(":::0:100:")
	next := token.Next(100)
	require.NotNil(t, next)
	assert.Equal(t, ":::101:100:", next.Encode())
	assert.Equal(t, 101, next.QueryOffset())

	next = next.Next(100)
	require.NotNil(t, next)
	assert.Equal(t, 202, next.QueryOffset())
}

func TestPlainTokenNextShortPage(t *testing.T) {
	token := oai.DecodePlainToken(":::101:100:")
	assert.Nil(t, token.Next(99))
	assert.Nil(t, token.Next(0))
}

func TestPlainTokenMonotonic(t *testing.T) {
	var token oai.ResumptionToken = oai.DecodePlainToken(":::0:10:")
	seen := map[string]bool{}
	last := -1
	for i := 0; i < 50; i++ {
		require.False(t, seen[token.Encode()])
		seen[token.Encode()] = true
		require.Greater(t, token.QueryOffset(), last)
		last = token.QueryOffset()
		token = token.Next(10)
		require.NotNil(t, token)
	}
	assert.Nil(t, token.Next(3))
}
