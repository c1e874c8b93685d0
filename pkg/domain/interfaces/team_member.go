package interfaces

import (
	"context"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

// TeamMemberRepository defines the interface for signatory data access
type TeamMemberRepository interface {
	// Create creates a new team member
	Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error)

	// ListByCase retrieves all team members of a case
	ListByCase(ctx context.Context, caseID int64) ([]*model.TeamMember, error)

	// Delete deletes a team member by ID
	Delete(ctx context.Context, id model.TeamMemberID) error
}
