package repository

import (
	"slices"

	"github.com/scieloorg/oai-pmh/constants"
)

// Precondition checks the names of the arguments present in a request,
// in canonical order, verb included.
type Precondition func(args []string) bool

// exactly accepts requests carrying all of names and nothing else.
func exactly(names ...string) Precondition {
	return func(args []string) bool {
		if len(args) != len(names) {
			return false
		}
		for _, name := range names {
			if !slices.Contains(args, name) {
				return false
			}
		}
		return true
	}
}

// within accepts requests carrying verb and any subset of optional.
func within(optional ...string) Precondition {
	return func(args []string) bool {
		if !slices.Contains(args, constants.ArgVerb) {
			return false
		}
		for _, arg := range args {
			if arg != constants.ArgVerb && !slices.Contains(optional, arg) {
				return false
			}
		}
		return true
	}
}

// selective accepts either a bare resumptionToken or a metadataPrefix
// with optional set and date range.
func selective(args []string) bool {
	if slices.Contains(args, constants.ArgResumptionToken) {
		return exactly(constants.ArgVerb, constants.ArgResumptionToken)(args)
	}
	return slices.Contains(args, constants.ArgMetadataPrefix) &&
		within(constants.ArgMetadataPrefix, constants.ArgSet, constants.ArgFrom, constants.ArgUntil)(args)
}

var (
	identifyArgs            = exactly(constants.ArgVerb)
	getRecordArgs           = exactly(constants.ArgVerb, constants.ArgMetadataPrefix, constants.ArgIdentifier)
	listRecordsArgs         = Precondition(selective)
	listIdentifiersArgs     = Precondition(selective)
	listMetadataFormatsArgs = within(constants.ArgIdentifier, constants.ArgResumptionToken)
	listSetsArgs            = within(constants.ArgResumptionToken)
)
