package serializer

import (
	"encoding/xml"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
)

type ErrorElement struct {
	XMLName xml.Name `xml:"error"`
	Code    string   `xml:"code,attr"`
	Message string   `xml:",chardata"`
}

// Error returns the <error> element for code. Only codes with a fixed
// text in constants.ErrorText carry a message.
func Error(code string) *ErrorElement {
	return &ErrorElement{Code: code, Message: constants.ErrorText[code]}
}

type IdentifyElement struct {
	XMLName           xml.Name `xml:"Identify"`
	RepositoryName    string   `xml:"repositoryName"`
	BaseURL           string   `xml:"baseURL"`
	ProtocolVersion   string   `xml:"protocolVersion"`
	AdminEmail        string   `xml:"adminEmail"`
	EarliestDatestamp string   `xml:"earliestDatestamp"`
	DeletedRecord     string   `xml:"deletedRecord"`
	Granularity       string   `xml:"granularity"`
}

func Identify(meta oai.RepositoryMeta) *IdentifyElement {
	earliest := ""
	if !meta.EarliestDatestamp.IsZero() {
		earliest = meta.EarliestDatestamp.Format(constants.DateLayout)
	}
	return &IdentifyElement{
		RepositoryName:    meta.RepositoryName,
		BaseURL:           meta.BaseURL,
		ProtocolVersion:   meta.ProtocolVersion,
		AdminEmail:        meta.AdminEmail,
		EarliestDatestamp: earliest,
		DeletedRecord:     meta.DeletedRecord,
		Granularity:       meta.Granularity,
	}
}

type metadataFormatElement struct {
	MetadataPrefix    string `xml:"metadataPrefix"`
	Schema            string `xml:"schema"`
	MetadataNamespace string `xml:"metadataNamespace"`
}

type ListMetadataFormatsElement struct {
	XMLName xml.Name                `xml:"ListMetadataFormats"`
	Formats []metadataFormatElement `xml:"metadataFormat"`
}

func ListMetadataFormats(formats []oai.MetadataFormat) *ListMetadataFormatsElement {
	elements := make([]metadataFormatElement, len(formats))
	for i, f := range formats {
		elements[i] = metadataFormatElement{
			MetadataPrefix:    f.MetadataPrefix,
			Schema:            f.Schema,
			MetadataNamespace: f.MetadataNamespace,
		}
	}
	return &ListMetadataFormatsElement{Formats: elements}
}

type setElement struct {
	SetSpec string `xml:"setSpec"`
	SetName string `xml:"setName"`
}

type ListSetsElement struct {
	XMLName         xml.Name     `xml:"ListSets"`
	Sets            []setElement `xml:"set"`
	ResumptionToken string       `xml:"resumptionToken"`
}

func ListSets(sets []oai.Set, token string) *ListSetsElement {
	elements := make([]setElement, len(sets))
	for i, s := range sets {
		elements[i] = setElement{SetSpec: s.SetSpec, SetName: s.SetName}
	}
	return &ListSetsElement{Sets: elements, ResumptionToken: token}
}

type headerElement struct {
	XMLName    xml.Name `xml:"header"`
	Status     string   `xml:"status,attr,omitempty"`
	Identifier string   `xml:"identifier"`
	Datestamp  string   `xml:"datestamp"`
	SetSpec    []string `xml:"setSpec"`
}

func newHeader(res oai.Resource) headerElement {
	status := ""
	if res.Deleted {
		status = "deleted"
	}
	return headerElement{
		Status:     status,
		Identifier: res.Ridentifier,
		Datestamp:  res.Datestamp.Format(constants.DateLayout),
		SetSpec:    res.SetSpec,
	}
}

type ListIdentifiersElement struct {
	XMLName         xml.Name        `xml:"ListIdentifiers"`
	Headers         []headerElement `xml:"header"`
	ResumptionToken string          `xml:"resumptionToken"`
}

func ListIdentifiers(resources []oai.Resource, token string) *ListIdentifiersElement {
	headers := make([]headerElement, len(resources))
	for i, res := range resources {
		headers[i] = newHeader(res)
	}
	return &ListIdentifiersElement{Headers: headers, ResumptionToken: token}
}

type metadataElement struct {
	XMLName xml.Name `xml:"metadata"`
	Content interface{}
}

type recordElement struct {
	XMLName  xml.Name         `xml:"record"`
	Header   headerElement    `xml:"header"`
	Metadata *metadataElement `xml:"metadata,omitempty"`
}

// Deleted records carry a header only.
func newRecord(res oai.Resource, formatter Formatter) recordElement {
	record := recordElement{Header: newHeader(res)}
	if !res.Deleted {
		record.Metadata = &metadataElement{Content: formatter(res)}
	}
	return record
}

type ListRecordsElement struct {
	XMLName         xml.Name        `xml:"ListRecords"`
	Records         []recordElement `xml:"record"`
	ResumptionToken string          `xml:"resumptionToken"`
}

func ListRecords(resources []oai.Resource, formatter Formatter, token string) *ListRecordsElement {
	records := make([]recordElement, len(resources))
	for i, res := range resources {
		records[i] = newRecord(res, formatter)
	}
	return &ListRecordsElement{Records: records, ResumptionToken: token}
}

type GetRecordElement struct {
	XMLName xml.Name      `xml:"GetRecord"`
	Record  recordElement `xml:"record"`
}

func GetRecord(res oai.Resource, formatter Formatter) *GetRecordElement {
	return &GetRecordElement{Record: newRecord(res, formatter)}
}
