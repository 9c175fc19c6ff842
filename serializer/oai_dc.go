package serializer

import (
	"encoding/xml"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
)

// Formatter renders the content of a record's <metadata> element.
type Formatter func(res oai.Resource) interface{}

// Augmenter adjusts a resource before it is formatted. Augmenters
// must not modify the resource they are given.
type Augmenter func(res oai.Resource) oai.Resource

func IdentityAugmenter(res oai.Resource) oai.Resource {
	return res
}

type dcElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type DublinCore struct {
	XMLName        xml.Name `xml:"oai_dc:dc"`
	XmlnsOAIDC     string   `xml:"xmlns:oai_dc,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsXsi       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Elements       []dcElement
}

// dcField extracts the values of one Dublin Core element.
type dcField struct {
	name   string
	values func(res oai.Resource) []string
}

func langValues(values []oai.LangValue) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = v.Value
	}
	return result
}

var (
	dcTitle       = dcField{"title", func(r oai.Resource) []string { return langValues(r.Title) }}
	dcCreator     = dcField{"creator", func(r oai.Resource) []string { return r.Creator }}
	dcSubject     = dcField{"subject", func(r oai.Resource) []string { return langValues(r.Subject) }}
	dcDescription = dcField{"description", func(r oai.Resource) []string { return langValues(r.Description) }}
	dcPublisher   = dcField{"publisher", func(r oai.Resource) []string { return r.Publisher }}
	dcContributor = dcField{"contributor", func(r oai.Resource) []string { return r.Contributor }}
	dcType        = dcField{"type", func(r oai.Resource) []string { return r.Type }}
	dcFormat      = dcField{"format", func(r oai.Resource) []string { return r.Format }}
	dcIdentifier  = dcField{"identifier", func(r oai.Resource) []string { return r.Identifier }}
	dcSource      = dcField{"source", func(r oai.Resource) []string { return r.Source }}
	dcLanguage    = dcField{"language", func(r oai.Resource) []string { return r.Language }}
	dcRelation    = dcField{"relation", func(r oai.Resource) []string { return r.Relation }}
	dcRights      = dcField{"rights", func(r oai.Resource) []string { return r.Rights }}
	dcDate        = dcField{"date", func(r oai.Resource) []string {
		dates := make([]string, len(r.Date))
		for i, d := range r.Date {
			dates[i] = d.Format(constants.DateLayout)
		}
		return dates
	}}
)

// Element order follows the Dublin Core element set.
var oaiDCFields = []dcField{
	dcTitle, dcCreator, dcSubject, dcDescription, dcPublisher, dcContributor,
	dcDate, dcType, dcFormat, dcIdentifier, dcSource, dcLanguage, dcRelation,
	dcRights,
}

// OpenAIRE guidelines order, which also leaves out relation.
var openAIREFields = []dcField{
	dcTitle, dcCreator, dcContributor, dcDescription, dcSubject, dcPublisher,
	dcDate, dcType, dcSource, dcFormat, dcIdentifier, dcRights, dcLanguage,
}

func newDublinCore(res oai.Resource, fields []dcField) *DublinCore {
	elements := make([]dcElement, 0)
	for _, field := range fields {
		for _, value := range field.values(res) {
			elements = append(elements, dcElement{
				XMLName: xml.Name{Local: "dc:" + field.name},
				Value:   value,
			})
		}
	}
	return &DublinCore{
		XmlnsOAIDC:     constants.NamespaceOAIDC,
		XmlnsDC:        constants.NamespaceDC,
		XmlnsXsi:       constants.NamespaceXSI,
		SchemaLocation: constants.SchemaLocationOAIDC,
		Elements:       elements,
	}
}

func OAIDC(res oai.Resource) interface{} {
	return newDublinCore(res, oaiDCFields)
}

func OAIDCOpenAIRE(res oai.Resource) interface{} {
	return newDublinCore(res, openAIREFields)
}

var openAIRETypes = map[string]string{
	"research-article": "article",
	"review-article":   "article",
	"book-review":      "review",
	"brief-report":     "report",
	"case-report":      "report",
}

// OpenAIRETypeFor maps a document type to the info:eu-repo/semantics
// publication type vocabulary.
func OpenAIRETypeFor(documentType string) string {
	if t, ok := openAIRETypes[documentType]; ok {
		return constants.SemanticsVocabPrefix + t
	}
	return constants.SemanticsVocabPrefix + "other"
}

// OpenAIREAugmenter marks the resource as open access and translates
// its types to the OpenAIRE vocabulary.
func OpenAIREAugmenter(res oai.Resource) oai.Resource {
	augmented := res.Copy()
	augmented.Rights = append(augmented.Rights, constants.SemanticsOpenAccess)
	for i, t := range augmented.Type {
		augmented.Type[i] = OpenAIRETypeFor(t)
	}
	return augmented
}
