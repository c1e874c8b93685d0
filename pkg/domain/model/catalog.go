package model

// CatalogEntry is one pre-loaded hazard/risk entry of the external risk
// catalog. Entries are read-only; the "add from catalog" operation copies
// their text fields verbatim into a new Risk.
type CatalogEntry struct {
	ID              int // sequential, assigned at catalog load
	Group           string
	Topic           string
	Hazard          string
	Risk            string
	LegalBasis      string
	Measure         string
	AffectedPersons string
	SourceFile      string
}
