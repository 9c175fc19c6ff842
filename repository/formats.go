package repository

import (
	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/serializer"
)

// FormatEntry is a metadata format the repository can disseminate.
type FormatEntry struct {
	Format    oai.MetadataFormat
	Formatter serializer.Formatter
	Augmenter serializer.Augmenter
}

// FormatTable holds formats in registration order. Build it before
// serving requests; it is read-only afterwards.
type FormatTable struct {
	entries []FormatEntry
}

func NewFormatTable() *FormatTable {
	return &FormatTable{entries: make([]FormatEntry, 0)}
}

// Add registers a format, replacing any format with the same prefix
// in place. A nil augmenter means the identity augmenter.
func (t *FormatTable) Add(format oai.MetadataFormat, formatter serializer.Formatter, augmenter serializer.Augmenter) *FormatTable {
	if augmenter == nil {
		augmenter = serializer.IdentityAugmenter
	}
	entry := FormatEntry{Format: format, Formatter: formatter, Augmenter: augmenter}
	for i, e := range t.entries {
		if e.Format.MetadataPrefix == format.MetadataPrefix {
			t.entries[i] = entry
			return t
		}
	}
	t.entries = append(t.entries, entry)
	return t
}

func (t *FormatTable) Lookup(prefix string) (FormatEntry, bool) {
	for _, e := range t.entries {
		if e.Format.MetadataPrefix == prefix {
			return e, true
		}
	}
	return FormatEntry{}, false
}

func (t *FormatTable) List() []oai.MetadataFormat {
	formats := make([]oai.MetadataFormat, len(t.entries))
	for i, e := range t.entries {
		formats[i] = e.Format
	}
	return formats
}

// DefaultFormatTable returns oai_dc and oai_dc_openaire.
func DefaultFormatTable() *FormatTable {
	dc := func(prefix string) oai.MetadataFormat {
		return oai.MetadataFormat{
			MetadataPrefix:    prefix,
			Schema:            constants.SchemaOAIDC,
			MetadataNamespace: constants.NamespaceOAIDC,
		}
	}
	return NewFormatTable().
		Add(dc(constants.FormatOAIDC), serializer.OAIDC, serializer.IdentityAugmenter).
		Add(dc(constants.FormatOAIDCOpenAIRE), serializer.OAIDCOpenAIRE, serializer.OpenAIREAugmenter)
}
