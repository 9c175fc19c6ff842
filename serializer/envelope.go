// Package serializer renders OAI-PMH response documents.
package serializer

import (
	"encoding/xml"
	"time"

	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
)

// Document is one complete OAI-PMH response. Body is one of the
// element types built by the functions in this package.
type Document struct {
	ResponseDate time.Time
	BaseURL      string
	Request      oai.Request
	Body         interface{}
}

type envelope struct {
	XMLName        xml.Name       `xml:"OAI-PMH"`
	Xmlns          string         `xml:"xmlns,attr"`
	XmlnsXsi       string         `xml:"xmlns:xsi,attr"`
	SchemaLocation string         `xml:"xsi:schemaLocation,attr"`
	ResponseDate   string         `xml:"responseDate"`
	Request        requestElement `xml:"request"`
	Body           interface{}
}

type requestElement struct {
	Attrs   []xml.Attr `xml:",any,attr"`
	BaseURL string     `xml:",chardata"`
}

// Marshal renders doc with the XML declaration. Request arguments with
// empty values are left out of the <request> element.
func Marshal(doc Document) ([]byte, error) {
	env := envelope{
		Xmlns:          constants.NamespaceOAI,
		XmlnsXsi:       constants.NamespaceXSI,
		SchemaLocation: constants.SchemaLocationOAI,
		ResponseDate:   doc.ResponseDate.UTC().Format(constants.ResponseDateLayout),
		Request:        newRequestElement(doc.Request, doc.BaseURL),
		Body:           doc.Body,
	}
	data, err := xml.Marshal(env)
	if err != nil {
		return nil, err
	}
	return append([]byte(constants.XMLDeclaration), data...), nil
}

func newRequestElement(req oai.Request, baseURL string) requestElement {
	args := req.Args()
	attrs := make([]xml.Attr, len(args))
	for i, name := range args {
		attrs[i] = xml.Attr{Name: xml.Name{Local: name}, Value: req.Get(name)}
	}
	return requestElement{Attrs: attrs, BaseURL: baseURL}
}
