package memory

import (
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
)

// Memory is the in-memory repository backend, used for development and
// tests. All entity stores are mutex-guarded maps with copy-on-read.
type Memory struct {
	cases    *caseRepository
	answers  *answerRepository
	risks    *riskRepository
	measures *measureRepository
	controls *controlRecordRepository
	team     *teamMemberRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	answers := newAnswerRepository()
	measures := newMeasureRepository()
	controls := newControlRecordRepository()
	team := newTeamMemberRepository()
	risks := newRiskRepository(measures, controls)
	cases := newCaseRepository(answers, risks, measures, controls, team)

	return &Memory{
		cases:    cases,
		answers:  answers,
		risks:    risks,
		measures: measures,
		controls: controls,
		team:     team,
	}
}

func (m *Memory) Case() interfaces.CaseRepository {
	return m.cases
}

func (m *Memory) Answer() interfaces.AnswerRepository {
	return m.answers
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risks
}

func (m *Memory) Measure() interfaces.MeasureRepository {
	return m.measures
}

func (m *Memory) ControlRecord() interfaces.ControlRecordRepository {
	return m.controls
}

func (m *Memory) TeamMember() interfaces.TeamMemberRepository {
	return m.team
}

// Close is a no-op for the in-memory backend
func (m *Memory) Close() error {
	return nil
}

// copyPtr returns a copy of the pointed-to value so stored entities never
// alias caller-owned memory
func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
