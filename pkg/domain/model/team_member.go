package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// TeamMemberID is a UUID-based identifier for TeamMember
type TeamMemberID string

// NewTeamMemberID generates a new UUID v4 TeamMemberID
func NewTeamMemberID() TeamMemberID {
	return TeamMemberID(uuid.New().String())
}

// String returns the string representation of TeamMemberID
func (t TeamMemberID) String() string {
	return string(t)
}

// TeamMember is a per-case signatory used only for report signature
// blocks. It has no behavior beyond storage.
type TeamMember struct {
	ID        TeamMemberID
	CaseID    int64
	Role      types.TeamRole
	Name      string
	Title     string
	CreatedAt time.Time
}

// DefaultSignatureBlock returns the standard empty signature rows used
// when a case has no team members of its own.
func DefaultSignatureBlock() []*TeamMember {
	roles := []types.TeamRole{
		types.TeamRoleEmployer,
		types.TeamRoleExpert,
		types.TeamRolePhysician,
		types.TeamRoleWorkerRep,
	}
	members := make([]*TeamMember, 0, len(roles))
	for _, role := range roles {
		members = append(members, &TeamMember{Role: role})
	}
	return members
}
