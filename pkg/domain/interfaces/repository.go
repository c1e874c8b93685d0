package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Case() CaseRepository
	Answer() AnswerRepository
	Risk() RiskRepository
	Measure() MeasureRepository
	ControlRecord() ControlRecordRepository
	TeamMember() TeamMemberRepository

	// Close releases backend resources
	Close() error
}
