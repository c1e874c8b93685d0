package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrCaseNotFound    = errors.New("case not found")
	ErrAnswerNotFound  = errors.New("answer not found")
	ErrRiskNotFound    = errors.New("risk not found")
	ErrMeasureNotFound = errors.New("measure not found")

	// Lifecycle errors
	ErrCaseAlreadyCompleted = errors.New("case is already completed")
	ErrCaseCompleted        = errors.New("case is completed and read-only")

	// Library errors
	ErrUnknownTool       = errors.New("unknown tool")
	ErrQuestionNotInTool = errors.New("question does not belong to the case's tool")

	// Validation errors
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidResponse    = errors.New("invalid response value")
	ErrInvalidPriority    = errors.New("invalid risk priority value")
	ErrInvalidMethod      = errors.New("invalid scoring method")
	ErrInvalidStrategy    = errors.New("invalid mitigation strategy")
	ErrCatalogUnavailable = errors.New("catalog is not configured")
)

// Context keys for error values
const (
	CaseIDKey     = "case_id"
	RiskIDKey     = "risk_id"
	MeasureIDKey  = "measure_id"
	QuestionIDKey = "question_id"
	CatalogIDKey  = "catalog_id"
)
