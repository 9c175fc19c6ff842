package oai

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/scieloorg/oai-pmh/constants"
)

const tokenSeparator = ":"

// ResumptionToken is the state needed to resume a paged listing. A
// token is a self-describing string, so nothing is kept on the
// server between requests.
type ResumptionToken interface {
	// Fields returns the six positional fields of the token.
	Fields() TokenFields

	// Encode returns the wire form of the token.
	Encode() string

	// IsFirstPage returns true if the token points to the start of
	// the result space.
	IsFirstPage() bool

	// QueryOffset, QueryFrom, QueryUntil and QueryCount return the
	// arguments for the data source query that produces the page
	// this token points to.
	QueryOffset() int
	QueryFrom() string
	QueryUntil() string
	QueryCount() int

	// Next returns the token for the page after the current one,
	// given the number of items the current page produced. It
	// returns nil when there are no more pages.
	Next(pageLen int) ResumptionToken
}

// TokenFields are the fields shared by every token variant, in wire
// order. All values are kept as strings; encoding is lossy.
type TokenFields struct {
	Set            string
	From           string
	Until          string
	Offset         string
	Count          string
	MetadataPrefix string
}

// DecodeTokenFields splits a token string into its positional fields.
// Missing trailing fields are left empty and extra fields are
// dropped. Field contents are not validated.
func DecodeTokenFields(token string) TokenFields {
	values := strings.Split(token, tokenSeparator)
	for len(values) < 6 {
		values = append(values, "")
	}
	return TokenFields{
		Set:            values[0],
		From:           values[1],
		Until:          values[2],
		Offset:         values[3],
		Count:          values[4],
		MetadataPrefix: values[5],
	}
}

func (f TokenFields) Fields() TokenFields {
	return f
}

func (f TokenFields) Encode() string {
	return strings.Join([]string{
		f.Set,
		f.From,
		f.Until,
		f.Offset,
		f.Count,
		f.MetadataPrefix,
	}, tokenSeparator)
}

func (f TokenFields) QueryCount() int {
	count, _ := strconv.Atoi(f.Count)
	return count
}

const (
	datePattern     = `(\d{4})-(\d{2})-(\d{2})`
	listSetsPattern = `^:::\d+:\d+:$`
)

// Per-verb syntax of the tokens each variant accepts. Verbs missing
// from a table cannot carry that kind of token.
var (
	PlainTokenPatterns = map[string]*regexp.Regexp{
		constants.VerbListRecords:     regexp.MustCompile(`^([\w-]+)?:(` + datePattern + `)?:(` + datePattern + `)?:\d+:\d+:\w+$`),
		constants.VerbListIdentifiers: regexp.MustCompile(`^([\w-]+)?:(` + datePattern + `)?:(` + datePattern + `)?:\d+:\d+:\w+$`),
		constants.VerbListSets:        regexp.MustCompile(listSetsPattern),
	}
	ChunkedTokenPatterns = map[string]*regexp.Regexp{
		constants.VerbListRecords:     regexp.MustCompile(`^([\w-]+)?:(` + datePattern + `)?:(` + datePattern + `)?:` + datePattern + `\(\d+\):\d+:\w+$`),
		constants.VerbListIdentifiers: regexp.MustCompile(`^([\w-]+)?:(` + datePattern + `)?:(` + datePattern + `)?:` + datePattern + `\(\d+\):\d+:\w+$`),
		constants.VerbListSets:        regexp.MustCompile(listSetsPattern),
	}
)

// IsValidToken returns true if token is well formed for verb
// according to patterns.
func IsValidToken(patterns map[string]*regexp.Regexp, verb, token string) bool {
	pattern, ok := patterns[verb]
	if !ok {
		return false
	}
	return pattern.MatchString(token)
}

// decodeFromRequest checks the token carried by req and decodes it.
func decodeFromRequest(patterns map[string]*regexp.Regexp, req Request, defaultCount int) (TokenFields, error) {
	if !IsValidToken(patterns, req.Verb, req.ResumptionToken) {
		return TokenFields{}, NewBadResumptionTokenError(
			"malformed token %q for %s", req.ResumptionToken, req.Verb)
	}
	fields := DecodeTokenFields(req.ResumptionToken)
	if fields.QueryCount() != defaultCount {
		return TokenFields{}, NewBadResumptionTokenError(
			"token count %s differs from the configured page size %d",
			fields.Count, defaultCount)
	}
	return fields, nil
}
