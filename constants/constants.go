package constants

const (
	ArgFrom                = "from"
	ArgIdentifier          = "identifier"
	ArgMetadataPrefix      = "metadataPrefix"
	ArgResumptionToken     = "resumptionToken"
	ArgSet                 = "set"
	ArgUntil               = "until"
	ArgVerb                = "verb"
	CacheLRU               = "lru"
	CacheNone              = "none"
	CacheRedis             = "redis"
	DataSourceCatalog      = "catalog"
	DataSourceMemory       = "memory"
	DataSourceS3           = "s3"
	DateLayout             = "2006-01-02"
	FilterJournal          = "code_title"
	FormatOAIDC            = "oai_dc"
	FormatOAIDCOpenAIRE    = "oai_dc_openaire"
	ResponseDateLayout     = "2006-01-02T15:04:05Z"
	SetOpenAIRE            = "openaire"
	XMLDeclaration         = "<?xml version='1.0' encoding='utf-8'?>\n"
	NamespaceDC            = "http://purl.org/dc/elements/1.1/"
	NamespaceOAI           = "http://www.openarchives.org/OAI/2.0/"
	NamespaceOAIDC         = "http://www.openarchives.org/OAI/2.0/oai_dc/"
	NamespaceXSI           = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaOAIDC            = "http://www.openarchives.org/OAI/2.0/oai_dc.xsd"
	SchemaLocationOAI      = "http://www.openarchives.org/OAI/2.0/ http://www.openarchives.org/OAI/2.0/OAI-PMH.xsd"
	SchemaLocationOAIDC    = "http://www.openarchives.org/OAI/2.0/oai_dc/ http://www.openarchives.org/OAI/2.0/oai_dc.xsd"
	SemanticsOpenAccess    = "info:eu-repo/semantics/openAccess"
	SemanticsVocabPrefix   = "info:eu-repo/semantics/"
	DefaultGranularity     = "YYYY-MM-DD"
	DefaultGranularityExpr = `^(\d{4})-(\d{2})-(\d{2})$`
)

// Error codes defined by OAI-PMH 2.0.
const (
	ErrBadArgument             = "badArgument"
	ErrBadResumptionToken      = "badResumptionToken"
	ErrBadVerb                 = "badVerb"
	ErrCannotDisseminateFormat = "cannotDisseminateFormat"
	ErrIdDoesNotExist          = "idDoesNotExist"
	ErrNoRecordsMatch          = "noRecordsMatch"
)

// ErrorText holds the human-readable text rendered inside <error>
// elements. Codes without an entry render an empty element.
var ErrorText = map[string]string{
	ErrBadVerb:        "Illegal OAI verb",
	ErrIdDoesNotExist: "No matching identifier",
}

// RequestArgs lists every argument a harvester may send, in the
// order they are echoed back in the <request> element.
var RequestArgs = []string{
	ArgVerb,
	ArgIdentifier,
	ArgMetadataPrefix,
	ArgSet,
	ArgResumptionToken,
	ArgFrom,
	ArgUntil,
}

// IsRequestArg returns true if name is a legal OAI-PMH argument.
func IsRequestArg(name string) bool {
	for _, arg := range RequestArgs {
		if arg == name {
			return true
		}
	}
	return false
}
