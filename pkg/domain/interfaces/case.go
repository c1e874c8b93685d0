package interfaces

import (
	"context"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

// CaseRepository defines the interface for assessment case data access
type CaseRepository interface {
	// Create creates a new case with auto-generated ID
	Create(ctx context.Context, c *model.Case) (*model.Case, error)

	// Get retrieves a case by ID
	Get(ctx context.Context, id int64) (*model.Case, error)

	// List retrieves all cases
	List(ctx context.Context) ([]*model.Case, error)

	// ListByFacility retrieves all cases of a facility
	ListByFacility(ctx context.Context, facilityID int64) ([]*model.Case, error)

	// Update updates an existing case
	Update(ctx context.Context, c *model.Case) (*model.Case, error)

	// Delete deletes a case by ID together with everything it owns:
	// answers, risks, measures, control records and team members
	Delete(ctx context.Context, id int64) error
}
