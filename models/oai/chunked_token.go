package oai

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/scieloorg/oai-pmh/constants"
)

// ChunkedToken pages through a date range in chunks of ChunkSize
// months. Its offset has the form "YYYY-MM-DD(n)": the first day of
// the current chunk and the number of items already served from it.
// A chunk may run into the following year.
//
// ChunkSize, LowerBound and UpperBound are not encoded. The bounds
// stand in for From and Until when those are empty.
type ChunkedToken struct {
	TokenFields
	ChunkSize  int
	LowerBound string
	UpperBound string
}

func DecodeChunkedToken(token string, chunkSize int, lowerBound, upperBound string) *ChunkedToken {
	return &ChunkedToken{
		TokenFields: DecodeTokenFields(token),
		ChunkSize:   chunkSize,
		LowerBound:  lowerBound,
		UpperBound:  upperBound,
	}
}

// NewChunkedTokenFromRequest returns the token carried by req, or a
// first page token when req carries none. First page tokens take
// defaultFrom and defaultUntil when the request has no date range.
func NewChunkedTokenFromRequest(req Request, defaultCount int, defaultFrom, defaultUntil string, chunkSize int) (*ChunkedToken, error) {
	token := &ChunkedToken{
		ChunkSize:  chunkSize,
		LowerBound: defaultFrom,
		UpperBound: defaultUntil,
	}
	if req.ResumptionToken != "" {
		fields, err := decodeFromRequest(ChunkedTokenPatterns, req, defaultCount)
		if err != nil {
			return nil, err
		}
		token.TokenFields = fields
		return token, nil
	}
	from := firstNonEmpty(req.From, defaultFrom)
	token.TokenFields = TokenFields{
		Set:            req.Set,
		From:           from,
		Until:          firstNonEmpty(req.Until, defaultUntil),
		Offset:         chunkOffset(from, 0),
		Count:          strconv.Itoa(defaultCount),
		MetadataPrefix: req.MetadataPrefix,
	}
	return token, nil
}

// LowerLimit is the first day of the whole date range.
func (t *ChunkedToken) LowerLimit() string {
	return firstNonEmpty(t.From, t.LowerBound)
}

// UpperLimit is the last day of the whole date range.
func (t *ChunkedToken) UpperLimit() string {
	return firstNonEmpty(t.Until, t.UpperBound)
}

func (t *ChunkedToken) IsFirstPage() bool {
	return t.Offset == chunkOffset(t.LowerLimit(), 0)
}

func (t *ChunkedToken) QueryOffset() int {
	open := strings.Index(t.Offset, "(")
	end := strings.LastIndex(t.Offset, ")")
	if open < 0 || end <= open {
		return 0
	}
	skip, _ := strconv.Atoi(t.Offset[open+1 : end])
	return skip
}

func (t *ChunkedToken) QueryFrom() string {
	if open := strings.Index(t.Offset, "("); open >= 0 {
		return t.Offset[:open]
	}
	return t.Offset
}

// QueryUntil returns the last day of the chunk starting at
// QueryFrom, clipped to UpperLimit.
func (t *ChunkedToken) QueryUntil() string {
	upper := t.UpperLimit()
	from, err := time.Parse(constants.DateLayout, t.QueryFrom())
	if err != nil {
		return upper
	}
	chunkSize := t.ChunkSize
	if chunkSize < 1 {
		chunkSize = 1
	}
	// Day 0 of the month after the chunk is its last day.
	end := time.Date(from.Year(), from.Month()+time.Month(chunkSize), 0, 0, 0, 0, 0, time.UTC)
	until := end.Format(constants.DateLayout)
	if upper != "" && upper <= until {
		return upper
	}
	return until
}

// Next moves deeper into the current chunk after a full page, or on
// to the next chunk once the current one is exhausted.
func (t *ChunkedToken) Next(pageLen int) ResumptionToken {
	next := *t
	if pageLen == t.QueryCount() {
		next.Offset = chunkOffset(t.QueryFrom(), t.QueryOffset()+t.QueryCount())
		return &next
	}
	until := t.QueryUntil()
	if until < t.UpperLimit() {
		last, err := time.Parse(constants.DateLayout, until)
		if err != nil {
			return nil
		}
		next.Offset = chunkOffset(last.AddDate(0, 0, 1).Format(constants.DateLayout), 0)
		return &next
	}
	return nil
}

func chunkOffset(from string, skip int) string {
	return fmt.Sprintf("%s(%d)", from, skip)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
