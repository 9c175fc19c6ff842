package oai_test

import (
	"testing"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunked(token string) *oai.ChunkedToken {
	return oai.DecodeChunkedToken(token, 12, "1998-08-01", "2018-01-01")
}

func TestNewChunkedTokenFromRequest(t *testing.T) {
	req := oai.Request{Verb: constants.VerbListRecords, MetadataPrefix: "oai_dc"}
	token, err := oai.NewChunkedTokenFromRequest(req, 100, "1998-08-01", "2018-01-01", 12)
	require.Nil(t, err)
	assert.True(t, token.IsFirstPage())
	assert.Equal(t, ":1998-08-01:2018-01-01:1998-08-01(0):100:oai_dc", token.Encode())

	req.From = "2010-03-15"
	req.Until = "2010-06-30"
	req.Set = "0001-3765"
	token, err = oai.NewChunkedTokenFromRequest(req, 100, "1998-08-01", "2018-01-01", 12)
	require.Nil(t, err)
	assert.True(t, token.IsFirstPage())
	assert.Equal(t, "0001-3765:2010-03-15:2010-06-30:2010-03-15(0):100:oai_dc", token.Encode())
}

func TestChunkedTokenFirstPage(t *testing.T) {
	assert.True(t, chunked(":1998-01-01:1998-12-31:1998-01-01(0):1000:oai_dc").IsFirstPage())
	assert.False(t, chunked(":1998-01-01:1998-12-31:1998-01-01(100):1000:oai_dc").IsFirstPage())
	assert.False(t, chunked(":1998-01-01:1999-12-31:1999-01-01(0):1000:oai_dc").IsFirstPage())

	// With no From in the token the lower bound is used.
	assert.True(t, chunked(":::1998-08-01(0):1000:oai_dc").IsFirstPage())
	assert.False(t, chunked(":::1999-01-01(0):1000:oai_dc").IsFirstPage())
}

func TestChunkedTokenQuery(t *testing.T) {
	token := chunked(":1998-01-01:1999-12-31:1998-03-01(200):100:oai_dc")
	assert.Equal(t, 200, token.QueryOffset())
	assert.Equal(t, 100, token.QueryCount())
	assert.Equal(t, "1998-03-01", token.QueryFrom())
	assert.Equal(t, "1999-02-28", token.QueryUntil())

	token = oai.DecodeChunkedToken(":1998-01-01:1999-12-31:1998-01-01(0):100:oai_dc", 3, "", "")
	assert.Equal(t, "1998-03-31", token.QueryUntil())

	token = oai.DecodeChunkedToken(":1998-01-01:1999-12-31:1998-02-01(0):100:oai_dc", 1, "", "")
	assert.Equal(t, "1998-02-28", token.QueryUntil())
}

func TestChunkedTokenClipsToUpperBound(t *testing.T) {
	token := chunked(":1998-01-01:1998-05-10:1998-01-01(0):100:oai_dc")
	assert.Equal(t, "1998-05-10", token.QueryUntil())

	// Without Until the upper bound applies.
	token = oai.DecodeChunkedToken(":::2017-06-01(0):100:oai_dc", 12, "1998-08-01", "2017-09-30")
	assert.Equal(t, "2017-09-30", token.QueryUntil())

	for _, chunkSize := range []int{1, 3, 6, 12, 24} {
		token = oai.DecodeChunkedToken(":1998-01-01:1998-02-14:1998-01-01(0):100:oai_dc", chunkSize, "", "")
		assert.LessOrEqual(t, token.QueryUntil(), "1998-02-14")
	}
}

func TestChunkedTokenNextFullPage(t *testing.T) {
	token := chunked(":1998-01-01:1998-12-31:1998-01-01(0):1000:oai_dc")
	next := token.Next(1000)
	require.NotNil(t, next)
	assert.Equal(t, ":1998-01-01:1998-12-31:1998-01-01(1000):1000:oai_dc", next.Encode())
}

func TestChunkedTokenNextRollsOver(t *testing.T) {
	token := chunked(":1998-01-01:1999-12-31:1998-01-01(1001):1000:oai_dc")
	next := token.Next(10)
	require.NotNil(t, next)
	assert.Equal(t, ":1998-01-01:1999-12-31:1999-01-01(0):1000:oai_dc", next.Encode())
	assert.False(t, next.IsFirstPage())
}

func TestChunkedTokenCrossesYear(t *testing.T) {
	token := oai.DecodeChunkedToken(":1998-08-01:2017-01-01:1998-08-01(0):100:oai_dc", 12, "", "")
	assert.Equal(t, "1999-07-31", token.QueryUntil())
	next := token.Next(5)
	require.NotNil(t, next)
	assert.Equal(t, ":1998-08-01:2017-01-01:1999-08-01(0):100:oai_dc", next.Encode())
	assert.Equal(t, "2000-07-31", next.QueryUntil())

	// The default range with no From starts at the lower bound.
	token = chunked(":::1998-08-01(0):100:oai_dc")
	assert.Equal(t, "1999-07-31", token.QueryUntil())

	token = oai.DecodeChunkedToken(":1998-11-15:1999-12-31:1998-11-15(0):100:oai_dc", 3, "", "")
	assert.Equal(t, "1999-01-31", token.QueryUntil())
}

func TestChunkedTokenNextAtUpperBound(t *testing.T) {
	token := chunked(":1998-01-01:1998-12-31:1998-01-01(0):1000:oai_dc")
	assert.Nil(t, token.Next(999))

	token = chunked(":1998-01-01:1998-12-31:1998-12-31(1001):1000:oai_dc")
	assert.Nil(t, token.Next(0))
}

func TestChunkedTokenMonotonic(t *testing.T) {
	var token oai.ResumptionToken = oai.DecodeChunkedToken(":1998-01-01:2001-06-30:1998-01-01(0):10:oai_dc", 6, "", "")
	seen := map[string]bool{}
	pages := 0
	for token != nil {
		require.False(t, seen[token.Encode()], token.Encode())
		seen[token.Encode()] = true
		assert.LessOrEqual(t, token.QueryUntil(), "2001-06-30")
		// Two full pages per chunk, then a short one.
		pageLen := 10
		if token.QueryOffset() >= 20 {
			pageLen = 5
		}
		token = token.Next(pageLen)
		pages++
		require.Less(t, pages, 100)
	}
	// 1998 H1, 1998 H2, 1999 H1, 1999 H2, 2000 H1, 2000 H2, 2001 H1.
	assert.Equal(t, 7*3, pages)
}
