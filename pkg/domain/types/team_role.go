package types

import "fmt"

// TeamRole is the signature-block role of an assessment team member
type TeamRole string

const (
	TeamRoleEmployer    TeamRole = "EMPLOYER"
	TeamRoleExpert      TeamRole = "SAFETY_EXPERT"
	TeamRolePhysician   TeamRole = "PHYSICIAN"
	TeamRoleWorkerRep   TeamRole = "WORKER_REP"
	TeamRoleParticipant TeamRole = "PARTICIPANT"
)

// AllTeamRoles returns all valid team roles
func AllTeamRoles() []TeamRole {
	return []TeamRole{
		TeamRoleEmployer,
		TeamRoleExpert,
		TeamRolePhysician,
		TeamRoleWorkerRep,
		TeamRoleParticipant,
	}
}

// IsValid checks if the team role is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleEmployer,
		TeamRoleExpert,
		TeamRolePhysician,
		TeamRoleWorkerRep,
		TeamRoleParticipant:
		return true
	default:
		return false
	}
}

// DisplayName returns the report label of the team role
func (r TeamRole) DisplayName() string {
	switch r {
	case TeamRoleEmployer:
		return "İşveren / Vekili"
	case TeamRoleExpert:
		return "İSG Uzmanı"
	case TeamRolePhysician:
		return "İş Yeri Hekimi"
	case TeamRoleWorkerRep:
		return "Çalışan Temsilcisi"
	case TeamRoleParticipant:
		return "Katılımcı"
	default:
		return string(r)
	}
}

// String returns the string representation of the team role
func (r TeamRole) String() string {
	return string(r)
}

// ParseTeamRole parses a string into a TeamRole
func ParseTeamRole(s string) (TeamRole, error) {
	role := TeamRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid team role: %s", s)
	}
	return role, nil
}
