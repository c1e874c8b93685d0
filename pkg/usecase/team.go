package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

type TeamUseCase struct {
	repo interfaces.Repository
}

func NewTeamUseCase(repo interfaces.Repository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// AddTeamMember registers a signatory on a case
func (uc *TeamUseCase) AddTeamMember(ctx context.Context, caseID int64, role types.TeamRole, name, title string) (*model.TeamMember, error) {
	if !role.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid team role", goerr.V("role", role))
	}
	if name == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "team member name is required")
	}
	if _, err := uc.repo.Case().Get(ctx, caseID); err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, caseID))
	}

	created, err := uc.repo.TeamMember().Create(ctx, &model.TeamMember{
		CaseID: caseID,
		Role:   role,
		Name:   name,
		Title:  title,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to add team member", goerr.V(CaseIDKey, caseID))
	}
	return created, nil
}

// SignatureBlock returns the case's signatories for the report footer.
// A case without members of its own gets the standard empty block so the
// printed report always has signature rows.
func (uc *TeamUseCase) SignatureBlock(ctx context.Context, caseID int64) ([]*model.TeamMember, error) {
	if _, err := uc.repo.Case().Get(ctx, caseID); err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, caseID))
	}

	members, err := uc.repo.TeamMember().ListByCase(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list team members", goerr.V(CaseIDKey, caseID))
	}
	if len(members) == 0 {
		return model.DefaultSignatureBlock(), nil
	}
	return members, nil
}

func (uc *TeamUseCase) RemoveTeamMember(ctx context.Context, id model.TeamMemberID) error {
	if err := uc.repo.TeamMember().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to remove team member", goerr.V("team_member_id", id))
	}
	return nil
}
