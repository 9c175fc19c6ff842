package oai

import (
	"slices"
	"time"
)

// RepositoryMeta describes the repository in Identify responses.
type RepositoryMeta struct {
	RepositoryName    string
	BaseURL           string
	ProtocolVersion   string
	AdminEmail        string
	EarliestDatestamp time.Time
	DeletedRecord     string
	Granularity       string
}

type MetadataFormat struct {
	MetadataPrefix    string
	Schema            string
	MetadataNamespace string
}

// LangValue is a value tagged with the language it is written in.
type LangValue struct {
	Lang  string
	Value string
}

// Resource is one harvestable item, shaped after Dublin Core. Apart
// from Ridentifier and Datestamp every field is multi-valued.
type Resource struct {
	Ridentifier string
	Datestamp   time.Time
	SetSpec     []string
	Deleted     bool

	Title       []LangValue
	Creator     []string
	Subject     []LangValue
	Description []LangValue
	Publisher   []string
	Contributor []string
	Date        []time.Time
	Type        []string
	Format      []string
	Identifier  []string
	Source      []string
	Language    []string
	Relation    []string
	Rights      []string
}

// Copy returns a deep copy of the resource, so callers can modify
// multi-valued fields without touching data shared with the store.
func (r Resource) Copy() Resource {
	c := r
	c.SetSpec = slices.Clone(r.SetSpec)
	c.Title = slices.Clone(r.Title)
	c.Creator = slices.Clone(r.Creator)
	c.Subject = slices.Clone(r.Subject)
	c.Description = slices.Clone(r.Description)
	c.Publisher = slices.Clone(r.Publisher)
	c.Contributor = slices.Clone(r.Contributor)
	c.Date = slices.Clone(r.Date)
	c.Type = slices.Clone(r.Type)
	c.Format = slices.Clone(r.Format)
	c.Identifier = slices.Clone(r.Identifier)
	c.Source = slices.Clone(r.Source)
	c.Language = slices.Clone(r.Language)
	c.Relation = slices.Clone(r.Relation)
	c.Rights = slices.Clone(r.Rights)
	return c
}

// InSet returns true if spec is one of the resource's setSpecs.
func (r Resource) InSet(spec string) bool {
	return slices.Contains(r.SetSpec, spec)
}

// Set is an OAI-PMH set. SetSpec may not contain colons, since it
// travels inside resumption tokens.
type Set struct {
	SetSpec string
	SetName string
}

type Journal struct {
	Title    string
	LeadISSN string
}

// Set maps the journal to the dynamic set that groups its articles.
func (j Journal) Set() Set {
	return Set{
		SetSpec: j.LeadISSN,
		SetName: j.Title,
	}
}
