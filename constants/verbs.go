package constants

import "slices"

const (
	VerbGetRecord           = "GetRecord"
	VerbIdentify            = "Identify"
	VerbListIdentifiers     = "ListIdentifiers"
	VerbListMetadataFormats = "ListMetadataFormats"
	VerbListRecords         = "ListRecords"
	VerbListSets            = "ListSets"
)

// Verbs lists the six OAI-PMH verbs.
var Verbs = []string{
	VerbIdentify,
	VerbGetRecord,
	VerbListRecords,
	VerbListIdentifiers,
	VerbListMetadataFormats,
	VerbListSets,
}

// IsVerb returns true if name is one of the six OAI-PMH verbs.
func IsVerb(name string) bool {
	return slices.Contains(Verbs, name)
}
