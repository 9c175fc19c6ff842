package oai

import (
	"net/url"

	"github.com/scieloorg/oai-pmh/constants"
)

// Request holds the arguments of one OAI-PMH request. Empty strings
// mean the argument was not sent.
type Request struct {
	Verb            string
	Identifier      string
	MetadataPrefix  string
	Set             string
	ResumptionToken string
	From            string
	Until           string
}

// NewRequest builds a Request from the first value of each legal key
// in params. Unknown keys are ignored here; callers reject them before
// getting this far.
func NewRequest(params url.Values) Request {
	return Request{
		Verb:            params.Get(constants.ArgVerb),
		Identifier:      params.Get(constants.ArgIdentifier),
		MetadataPrefix:  params.Get(constants.ArgMetadataPrefix),
		Set:             params.Get(constants.ArgSet),
		ResumptionToken: params.Get(constants.ArgResumptionToken),
		From:            params.Get(constants.ArgFrom),
		Until:           params.Get(constants.ArgUntil),
	}
}

// Get returns the value of the named argument.
func (r Request) Get(name string) string {
	switch name {
	case constants.ArgVerb:
		return r.Verb
	case constants.ArgIdentifier:
		return r.Identifier
	case constants.ArgMetadataPrefix:
		return r.MetadataPrefix
	case constants.ArgSet:
		return r.Set
	case constants.ArgResumptionToken:
		return r.ResumptionToken
	case constants.ArgFrom:
		return r.From
	case constants.ArgUntil:
		return r.Until
	}
	return ""
}

// Has returns true if the named argument is present and non-empty.
func (r Request) Has(name string) bool {
	return r.Get(name) != ""
}

// Args returns the names of the arguments present in the request,
// in canonical order.
func (r Request) Args() []string {
	args := make([]string, 0, len(constants.RequestArgs))
	for _, name := range constants.RequestArgs {
		if r.Has(name) {
			args = append(args, name)
		}
	}
	return args
}

// Without returns a copy of the request with the named arguments
// cleared.
func (r Request) Without(names ...string) Request {
	for _, name := range names {
		switch name {
		case constants.ArgVerb:
			r.Verb = ""
		case constants.ArgIdentifier:
			r.Identifier = ""
		case constants.ArgMetadataPrefix:
			r.MetadataPrefix = ""
		case constants.ArgSet:
			r.Set = ""
		case constants.ArgResumptionToken:
			r.ResumptionToken = ""
		case constants.ArgFrom:
			r.From = ""
		case constants.ArgUntil:
			r.Until = ""
		}
	}
	return r
}
