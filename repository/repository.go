package repository

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"
	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/datastore"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/serializer"
)

// Repository answers OAI-PMH requests. It validates the query string,
// dispatches to one handler per verb and renders the response
// document, or an error document when the request cannot be served.
type Repository struct {
	Meta    oai.RepositoryMeta
	Formats *FormatTable
	Pages   *ResultPageFactory

	logger   *logging.Logger
	handlers map[string]verbHandler
}

// Response is a rendered document plus what the dispatcher learned
// about the request. Verb is empty when the request named no known
// verb. ErrorCode is empty on success.
type Response struct {
	RequestID string
	Verb      string
	ErrorCode string
	Body      []byte
}

type verbHandler struct {
	check  Precondition
	handle func(ctx context.Context, req oai.Request) (interface{}, error)
}

func NewRepository(meta oai.RepositoryMeta, formats *FormatTable, pages *ResultPageFactory, logger *logging.Logger) *Repository {
	r := &Repository{
		Meta:    meta,
		Formats: formats,
		Pages:   pages,
		logger:  logger,
	}
	r.handlers = map[string]verbHandler{
		constants.VerbIdentify:            {identifyArgs, r.identify},
		constants.VerbGetRecord:           {getRecordArgs, r.getRecord},
		constants.VerbListRecords:         {listRecordsArgs, r.listRecords},
		constants.VerbListIdentifiers:     {listIdentifiersArgs, r.listIdentifiers},
		constants.VerbListMetadataFormats: {listMetadataFormatsArgs, r.listMetadataFormats},
		constants.VerbListSets:            {listSetsArgs, r.listSets},
	}
	return r
}

// HandleRequest answers the OAI-PMH request in query, the raw query
// string of a GET or the body of a form POST. Protocol errors come
// back as error documents; the error return is reserved for failures
// of the data source or the serializer.
func (r *Repository) HandleRequest(ctx context.Context, query string) ([]byte, error) {
	resp, err := r.Handle(ctx, query)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Handle is HandleRequest with the request details the HTTP layer
// needs for logging and metrics.
func (r *Repository) Handle(ctx context.Context, query string) (*Response, error) {
	resp := &Response{RequestID: uuid.NewString()}
	started := time.Now()

	params, err := url.ParseQuery(query)
	req := oai.NewRequest(params)
	if err != nil {
		return r.renderError(resp, req, oai.NewBadArgumentError("malformed query string: %v", err))
	}
	if err := checkParams(params); err != nil {
		return r.renderError(resp, req, err.(*oai.ProtocolError))
	}
	handler, ok := r.handlers[req.Verb]
	if !ok {
		return r.renderError(resp, req, oai.NewBadVerbError("illegal verb %q", req.Verb))
	}
	resp.Verb = req.Verb
	if !handler.check(req.Args()) {
		return r.renderError(resp, req, oai.NewBadArgumentError("illegal arguments %v for %s", req.Args(), req.Verb))
	}

	body, err := handler.handle(ctx, req)
	if err != nil {
		if protoErr, ok := oai.AsProtocolError(err); ok {
			return r.renderError(resp, req, protoErr)
		}
		r.logger.Errorf("[%s] %s failed: %s", resp.RequestID, req.Verb, errorDetail(err))
		return nil, err
	}
	resp.Body, err = r.render(req, body)
	if err != nil {
		return nil, err
	}
	r.logger.Debugf("[%s] %s %v in %s", resp.RequestID, req.Verb, req.Args(), time.Since(started))
	return resp, nil
}

// checkParams rejects keys that are not OAI-PMH arguments and
// repeated keys. Empty values count as absent.
func checkParams(params url.Values) error {
	for key, values := range params {
		if !constants.IsRequestArg(key) {
			return oai.NewBadArgumentError("illegal argument %q", key)
		}
		if len(values) > 1 {
			return oai.NewBadArgumentError("repeated argument %q", key)
		}
	}
	return nil
}

func (r *Repository) render(req oai.Request, body interface{}) ([]byte, error) {
	return serializer.Marshal(serializer.Document{
		ResponseDate: r.Pages.now(),
		BaseURL:      r.Meta.BaseURL,
		Request:      req,
		Body:         body,
	})
}

func (r *Repository) renderError(resp *Response, req oai.Request, protoErr *oai.ProtocolError) (*Response, error) {
	r.logger.Infof("[%s] %s", resp.RequestID, protoErr.Error())
	resp.ErrorCode = protoErr.Code
	body, err := r.render(scrub(req, r.Pages.Granularity), serializer.Error(protoErr.Code))
	if err != nil {
		return nil, err
	}
	resp.Body = body
	return resp, nil
}

// scrub drops the arguments of req that must not be echoed in an
// error document: dates that do not match the granularity and a verb
// the repository does not know.
func scrub(req oai.Request, granularity *regexp.Regexp) oai.Request {
	if req.From != "" && !granularity.MatchString(req.From) {
		req = req.Without(constants.ArgFrom)
	}
	if req.Until != "" && !granularity.MatchString(req.Until) {
		req = req.Without(constants.ArgUntil)
	}
	if !constants.IsVerb(req.Verb) {
		req = req.Without(constants.ArgVerb)
	}
	return req
}

func errorDetail(err error) string {
	if detailed, ok := err.(interface{ Detail() string }); ok {
		return detailed.Detail()
	}
	return err.Error()
}

func (r *Repository) identify(ctx context.Context, req oai.Request) (interface{}, error) {
	return serializer.Identify(r.Meta), nil
}

func (r *Repository) getRecord(ctx context.Context, req oai.Request) (interface{}, error) {
	entry, ok := r.Formats.Lookup(req.MetadataPrefix)
	if !ok {
		return nil, oai.NewCannotDisseminateFormatError("unknown metadataPrefix %q", req.MetadataPrefix)
	}
	res, err := r.getResource(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}
	return serializer.GetRecord(entry.Augmenter(res), entry.Formatter), nil
}

func (r *Repository) getResource(ctx context.Context, identifier string) (oai.Resource, error) {
	res, err := r.Pages.DataStore.Get(ctx, identifier)
	if datastore.IsDoesNotExist(err) {
		return oai.Resource{}, oai.NewIdDoesNotExistError("%s", identifier)
	}
	if err != nil {
		return oai.Resource{}, fmt.Errorf("getting resource %s: %w", identifier, err)
	}
	return res, nil
}

// recordsPage builds the page shared by ListRecords and ListIdentifiers
// and resolves its metadata format.
func (r *Repository) recordsPage(ctx context.Context, req oai.Request) (*RecordsPage, FormatEntry, error) {
	if req.ResumptionToken == "" {
		if _, ok := r.Formats.Lookup(req.MetadataPrefix); !ok {
			return nil, FormatEntry{}, oai.NewCannotDisseminateFormatError("unknown metadataPrefix %q", req.MetadataPrefix)
		}
	}
	page, err := r.Pages.NewRecordsPage(ctx, req)
	if err != nil {
		return nil, FormatEntry{}, err
	}
	entry, err := page.SelectFormat(r.Formats)
	if err != nil {
		return nil, FormatEntry{}, err
	}
	return page, entry, nil
}

func (r *Repository) listRecords(ctx context.Context, req oai.Request) (interface{}, error) {
	page, entry, err := r.recordsPage(ctx, req)
	if err != nil {
		return nil, err
	}
	resources := make([]oai.Resource, len(page.Resources))
	for i, res := range page.Resources {
		resources[i] = entry.Augmenter(res)
	}
	return serializer.ListRecords(resources, entry.Formatter, EncodeToken(page.NextResumptionToken())), nil
}

func (r *Repository) listIdentifiers(ctx context.Context, req oai.Request) (interface{}, error) {
	page, _, err := r.recordsPage(ctx, req)
	if err != nil {
		return nil, err
	}
	return serializer.ListIdentifiers(page.Resources, EncodeToken(page.NextResumptionToken())), nil
}

func (r *Repository) listMetadataFormats(ctx context.Context, req oai.Request) (interface{}, error) {
	if req.Identifier != "" {
		if _, err := r.getResource(ctx, req.Identifier); err != nil {
			return nil, err
		}
	}
	return serializer.ListMetadataFormats(r.Formats.List()), nil
}

func (r *Repository) listSets(ctx context.Context, req oai.Request) (interface{}, error) {
	page, err := r.Pages.NewSetsPage(ctx, req)
	if err != nil {
		return nil, err
	}
	return serializer.ListSets(page.Sets, EncodeToken(page.NextResumptionToken())), nil
}
