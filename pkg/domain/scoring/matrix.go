package scoring

import "github.com/m-mizutani/goerr/v2"

// L-Matrix threshold lower bounds
const (
	matrixLow         = 3
	matrixMedium      = 6
	matrixSignificant = 12
	matrixIntolerable = 20
)

// LMatrix computes the 5x5 L-Matrix risk score P x S. The score is defined
// only when both inputs are present; a missing input yields nil.
func LMatrix(probability, severity *int) *int {
	if probability == nil || severity == nil {
		return nil
	}

	score := *probability * *severity
	return &score
}

// ErrInputRange is returned when a scoring input falls outside its axis range
var ErrInputRange = goerr.New("scoring input out of range")

// ValidateMatrixInput checks that an L-Matrix input is either unset or
// within the 1..5 matrix axis range.
func ValidateMatrixInput(name string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 5 {
		return goerr.Wrap(ErrInputRange, "matrix input must be between 1 and 5",
			goerr.V("input", name), goerr.V("value", *v))
	}
	return nil
}

// MatrixLevel maps an L-Matrix score to its risk level. A nil score maps
// to the unscored level.
func MatrixLevel(score *int) Level {
	if score == nil {
		return levelUnscored
	}

	switch {
	case *score >= matrixIntolerable:
		return levelIntolerable
	case *score >= matrixSignificant:
		return levelSignificant
	case *score >= matrixMedium:
		return levelMedium
	case *score >= matrixLow:
		return levelLow
	default:
		return levelInsignificant
	}
}
