package interfaces

import (
	"context"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

// MeasureRepository defines the interface for remediation measure data access
type MeasureRepository interface {
	// Create creates a new measure
	Create(ctx context.Context, measure *model.Measure) (*model.Measure, error)

	// Get retrieves a measure by ID
	Get(ctx context.Context, id model.MeasureID) (*model.Measure, error)

	// ListByAnswer retrieves all measures attached to an answer
	ListByAnswer(ctx context.Context, answerID string) ([]*model.Measure, error)

	// ListByRisk retrieves all measures attached to a risk
	ListByRisk(ctx context.Context, riskID int64) ([]*model.Measure, error)

	// ListByCase retrieves all measures of a case
	ListByCase(ctx context.Context, caseID int64) ([]*model.Measure, error)

	// Update updates an existing measure
	Update(ctx context.Context, measure *model.Measure) (*model.Measure, error)

	// Delete deletes a measure by ID
	Delete(ctx context.Context, id model.MeasureID) error
}
