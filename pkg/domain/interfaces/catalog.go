package interfaces

import (
	"context"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

// CatalogQuery filters and paginates a catalog search
type CatalogQuery struct {
	Query    string // matches hazard, risk and topic text
	Category string // matches the group label
	Limit    int
	Offset   int
}

// CatalogPage is one page of catalog search results
type CatalogPage struct {
	Results []*model.CatalogEntry
	Total   int
	HasMore bool
}

// Catalog is the read-only external risk catalog. Implementations load the
// whole catalog once and serve lookups from an in-memory snapshot; Reload
// replaces the snapshot explicitly.
type Catalog interface {
	// Get retrieves an entry by its stable integer ID
	Get(ctx context.Context, id int) (*model.CatalogEntry, error)

	// Categories returns the sorted unique group labels
	Categories(ctx context.Context) ([]string, error)

	// Search filters entries by text and category with pagination
	Search(ctx context.Context, query CatalogQuery) (*CatalogPage, error)

	// Reload discards the snapshot and loads the catalog again
	Reload(ctx context.Context) error
}
