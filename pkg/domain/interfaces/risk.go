package interfaces

import (
	"context"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

// RiskRepository defines the interface for ad-hoc risk data access.
// Both writes recompute the cached scores before persisting.
type RiskRepository interface {
	// Create creates a new risk with auto-generated ID
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Get retrieves a risk by ID
	Get(ctx context.Context, id int64) (*model.Risk, error)

	// ListByCase retrieves all risks of a case
	ListByCase(ctx context.Context, caseID int64) ([]*model.Risk, error)

	// Update updates an existing risk
	Update(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Delete deletes a risk by ID together with its measures and
	// control records
	Delete(ctx context.Context, id int64) error
}
