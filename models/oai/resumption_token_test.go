package oai_test

import (
	"testing"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/util/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenSyntaxCase struct {
	Token string
	Valid bool
}

// Cases for ListRecords and ListIdentifiers with a page size of 10.
var chunkedSyntaxCases = []tokenSyntaxCase{
	{"setname:1998-01-01:1998-12-31:1998-01-01(0):10:oai_dc", true},
	{"setname:1998-01-01:1998-12-31:1998-01-01(0):10:", false},
	{"setname:1998-01-01:1998-12-31:1998-01-01(0)::oai_dc", false},
	{"setname:1998-01-01:1998-12-31:1998-01-01(0)::", false},
	{"setname:1998-01-01:1998-12-31::10:oai_dc", false},
	{"setname:1998-01-01:1998-12-31:::oai_dc", false},
	{"setname:1998-01-01::1998-01-01(0):10:oai_dc", true},
	{"setname:1998-01-01::1998-01-01(0):10:", false},
	{"setname:1998-01-01:::10:oai_dc", false},
	{"setname::1998-12-31:1998-01-01(0):10:oai_dc", true},
	{"setname::1998-12-31::10:oai_dc", false},
	{"setname:::1998-01-01(0):10:oai_dc", true},
	{":1998-01-01:1998-12-31:1998-01-01(0):10:oai_dc", true},
	{"::::10:oai_dc", false},
	{":::1998-01-01(0):10:oai_dc", true},
	{"set:name:::1998-01-01(0):10:oai_dc", false},
	{"setname:98-01-01:1998-12-31:1998-01-01(0):10:oai_dc", false},
	{"setname:1998-01-01:1998-12-31:1998-01-01:10:oai_dc", false},
	{"setname:1998-01-01:1998-12-31:10:10:oai_dc", false},
	{"setname:1998-01-01:1998-12-31:1998-01-01(0):10:oai_dc:extra", false},
	{"", false},
	{"foo", false},
}

var plainSyntaxCases = []tokenSyntaxCase{
	{"setname:1998-01-01:1998-12-31:0:10:oai_dc", true},
	{"setname:1998-01-01:1998-12-31:0:10:", false},
	{":::11:10:oai_dc", true},
	{":::1998-01-01(0):10:oai_dc", false},
	{"setname:1998-01-01::::oai_dc", false},
}

var listSetsSyntaxCases = []tokenSyntaxCase{
	{":::0:10:", true},
	{":::101:10:", true},
	{"setname:::0:10:", false},
	{":1998-01-01::0:10:", false},
	{"::1998-01-01:0:10:", false},
	{":::0:10:oai_dc", false},
	{":::0::", false},
	{":::1998-01-01(0):10:", false},
}

func newTokenRequest(verb, token string) oai.Request {
	return oai.Request{Verb: verb, ResumptionToken: token}
}

func TestChunkedTokenSyntax(t *testing.T) {
	verbs := []string{constants.VerbListRecords, constants.VerbListIdentifiers}
	for _, verb := range verbs {
		for _, c := range chunkedSyntaxCases {
			_, err := oai.NewChunkedTokenFromRequest(newTokenRequest(verb, c.Token), 10, "1998-01-01", "1999-11-07", 12)
			if c.Valid {
				assert.Nil(t, err, "%s %s", verb, c.Token)
			} else {
				require.NotNil(t, err, "%s %s", verb, c.Token)
				assert.Equal(t, constants.ErrBadResumptionToken, testutil.ProtocolErrorCode(err))
			}
		}
	}
}

func TestPlainTokenSyntax(t *testing.T) {
	for _, c := range plainSyntaxCases {
		_, err := oai.NewPlainTokenFromRequest(newTokenRequest(constants.VerbListRecords, c.Token), 10)
		assert.Equal(t, c.Valid, err == nil, c.Token)
	}
}

func TestListSetsTokenSyntax(t *testing.T) {
	for _, c := range listSetsSyntaxCases {
		_, err := oai.NewPlainTokenFromRequest(newTokenRequest(constants.VerbListSets, c.Token), 10)
		assert.Equal(t, c.Valid, err == nil, c.Token)
		_, err = oai.NewChunkedTokenFromRequest(newTokenRequest(constants.VerbListSets, c.Token), 10, "1998-01-01", "1999-11-07", 12)
		assert.Equal(t, c.Valid, err == nil, c.Token)
	}
}

func TestTokenRejectedForVerbWithoutPattern(t *testing.T) {
	_, err := oai.NewPlainTokenFromRequest(newTokenRequest(constants.VerbGetRecord, ":::0:10:oai_dc"), 10)
	assert.Equal(t, constants.ErrBadResumptionToken, testutil.ProtocolErrorCode(err))
	_, err = oai.NewPlainTokenFromRequest(newTokenRequest("", ":::0:10:oai_dc"), 10)
	assert.Equal(t, constants.ErrBadResumptionToken, testutil.ProtocolErrorCode(err))
}

func TestTokenCountMustMatchPageSize(t *testing.T) {
	req := newTokenRequest(constants.VerbListRecords, ":::1998-01-01(0):1000:oai_dc")
	_, err := oai.NewChunkedTokenFromRequest(req, 100, "1998-01-01", "1999-11-07", 12)
	assert.Equal(t, constants.ErrBadResumptionToken, testutil.ProtocolErrorCode(err))

	token, err := oai.NewChunkedTokenFromRequest(req, 1000, "1998-01-01", "1999-11-07", 12)
	require.Nil(t, err)
	assert.Equal(t, 1000, token.QueryCount())

	req = newTokenRequest(constants.VerbListSets, ":::0:10:")
	_, err = oai.NewPlainTokenFromRequest(req, 100)
	assert.Equal(t, constants.ErrBadResumptionToken, testutil.ProtocolErrorCode(err))
}

func TestDecodeTokenFields(t *testing.T) {
	fields := oai.DecodeTokenFields("foo:1998-01-01:1998-12-31:1998-01-01(0):1000:oai_dc")
	assert.Equal(t, oai.TokenFields{
		Set:            "foo",
		From:           "1998-01-01",
		Until:          "1998-12-31",
		Offset:         "1998-01-01(0)",
		Count:          "1000",
		MetadataPrefix: "oai_dc",
	}, fields)

	fields = oai.DecodeTokenFields(":::1998-01-01(0):1000:oai_dc")
	assert.Equal(t, "", fields.Set)
	assert.Equal(t, "", fields.From)
	assert.Equal(t, "", fields.Until)
	assert.Equal(t, "1998-01-01(0)", fields.Offset)

	// Missing trailing fields decode as empty strings.
	fields = oai.DecodeTokenFields("foo:1998-01-01")
	assert.Equal(t, "foo", fields.Set)
	assert.Equal(t, "1998-01-01", fields.From)
	assert.Equal(t, "", fields.Offset)
	assert.Equal(t, "", fields.MetadataPrefix)

	// Extra fields are dropped.
	fields = oai.DecodeTokenFields("a:b:c:d:e:f:g")
	assert.Equal(t, "f", fields.MetadataPrefix)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := []string{
		":1998-01-01:1998-12-31:1998-01-01(0):1000:oai_dc",
		":::1998-01-01(0):1000:oai_dc",
		":1998-01-01:1998-12-31:1998-01-01(0)::oai_dc",
		"0001-6365::::100:",
		":::0:100:",
	}
	for _, token := range tokens {
		assert.Equal(t, token, oai.DecodeTokenFields(token).Encode())
		chunked := oai.DecodeChunkedToken(token, 12, "", "")
		assert.Equal(t, chunked.Fields(), oai.DecodeTokenFields(chunked.Encode()))
		plain := oai.DecodePlainToken(token)
		assert.Equal(t, plain.Fields(), oai.DecodeTokenFields(plain.Encode()))
	}
}
