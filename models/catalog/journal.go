package catalog

import (
	"encoding/json"

	"github.com/scieloorg/oai-pmh/models/oai"
)

// Journal is a journal record as served by the catalog API.
type Journal struct {
	Title      string `json:"title"`
	ScieloISSN string `json:"scielo_issn"`
	Collection string `json:"collection"`
}

func JournalFromJson(jsonData []byte) (*Journal, error) {
	journal := &Journal{}
	err := json.Unmarshal(jsonData, journal)
	if err != nil {
		return nil, err
	}
	return journal, nil
}

func (journal *Journal) ToJson() ([]byte, error) {
	bytes, err := json.Marshal(journal)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

func (journal *Journal) ToJournal() oai.Journal {
	return oai.Journal{
		Title:    journal.Title,
		LeadISSN: journal.ScieloISSN,
	}
}
