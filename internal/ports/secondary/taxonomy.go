package secondary

import "context"

// TaxonomyGateway defines the secondary port for the EPPO global database.
// Implementations talk to the gd.eppo.int REST API or a test double.
type TaxonomyGateway interface {
	// GetTaxon retrieves taxon details for an EPPO code.
	GetTaxon(ctx context.Context, code string) (*Taxon, error)

	// GetNames retrieves all names (preferred and synonyms) for an EPPO code.
	GetNames(ctx context.Context, code string) ([]TaxonName, error)
}

// Taxon represents taxon details as returned by the EPPO API.
type Taxon struct {
	Code     string
	FullName string // scientific name
}

// TaxonName represents one entry of a taxon's name list.
type TaxonName struct {
	FullName  string
	LangISO   string
	Preferred int // 1 marks the preferred name within a language
}
