package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/datastore"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/sets"
)

// ResultPageFactory builds one page of a listing from a request and
// the resumption token it carries, if any.
type ResultPageFactory struct {
	DataStore         datastore.DataStore
	Sets              *sets.Registry
	ListsLen          int
	ChunkSize         int
	Granularity       *regexp.Regexp
	EarliestDatestamp time.Time
	Now               func() time.Time
}

type RecordsPage struct {
	Token     *oai.ChunkedToken
	Resources []oai.Resource
}

type SetsPage struct {
	Token *oai.PlainToken
	Sets  []oai.Set
}

func (f *ResultPageFactory) now() time.Time {
	if f.Now == nil {
		return time.Now().UTC()
	}
	return f.Now().UTC()
}

// NewRecordsPage returns the page of resources for ListRecords and
// ListIdentifiers. The date range defaults to the earliest datestamp
// through today.
func (f *ResultPageFactory) NewRecordsPage(ctx context.Context, req oai.Request) (*RecordsPage, error) {
	token, err := oai.NewChunkedTokenFromRequest(
		req,
		f.ListsLen,
		f.EarliestDatestamp.Format(constants.DateLayout),
		f.now().Format(constants.DateLayout),
		f.ChunkSize)
	if err != nil {
		return nil, err
	}

	from, until := token.LowerLimit(), token.UpperLimit()
	if !f.Granularity.MatchString(from) || !f.Granularity.MatchString(until) {
		return nil, oai.NewBadArgumentError("from %q and until %q must match the repository granularity", from, until)
	}
	if from > until {
		return nil, oai.NewBadArgumentError("from %q is later than until %q", from, until)
	}

	view := datastore.View(datastore.IdentityView)
	if token.Set != "" {
		setView, ok, err := f.Sets.GetView(ctx, token.Set)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, oai.NewBadArgumentError("unknown set %q", token.Set)
		}
		view = setView
	}

	resources, err := f.DataStore.List(ctx, token.QueryOffset(), token.QueryCount(), view, token.QueryFrom(), token.QueryUntil())
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 && token.IsFirstPage() {
		return nil, oai.NewNoRecordsMatchError("no records between %s and %s", from, until)
	}
	return &RecordsPage{Token: token, Resources: resources}, nil
}

// SelectFormat returns the format named by the page's token.
func (p *RecordsPage) SelectFormat(formats *FormatTable) (FormatEntry, error) {
	entry, ok := formats.Lookup(p.Token.MetadataPrefix)
	if !ok {
		return FormatEntry{}, oai.NewCannotDisseminateFormatError("unknown metadataPrefix %q", p.Token.MetadataPrefix)
	}
	return entry, nil
}

func (p *RecordsPage) NextResumptionToken() oai.ResumptionToken {
	return p.Token.Next(len(p.Resources))
}

// NewSetsPage returns the page of sets for ListSets.
func (f *ResultPageFactory) NewSetsPage(ctx context.Context, req oai.Request) (*SetsPage, error) {
	token, err := oai.NewPlainTokenFromRequest(req, f.ListsLen)
	if err != nil {
		return nil, err
	}
	list, err := f.Sets.List(ctx, token.QueryOffset(), token.QueryCount())
	if err != nil {
		return nil, err
	}
	return &SetsPage{Token: token, Sets: list}, nil
}

func (p *SetsPage) NextResumptionToken() oai.ResumptionToken {
	return p.Token.Next(len(p.Sets))
}

// EncodeToken returns the wire form of token, or "" for nil.
func EncodeToken(token oai.ResumptionToken) string {
	if token == nil {
		return ""
	}
	return token.Encode()
}
