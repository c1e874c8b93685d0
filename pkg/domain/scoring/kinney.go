package scoring

import "math"

// Fine-Kinney threshold lower bounds
const (
	kinneyPossible    = 20
	kinneySignificant = 70
	kinneySubstantial = 200
	kinneyIntolerable = 400
)

// FineKinney computes the Fine-Kinney risk score floor(P x F x S).
// The score is defined only when all three inputs are present; a missing
// input yields nil, never a partial product with a defaulted factor.
func FineKinney(probability, frequency *float64, severity *int) *int {
	if probability == nil || frequency == nil || severity == nil {
		return nil
	}

	score := int(math.Floor(*probability * *frequency * float64(*severity)))
	return &score
}

// KinneyLevel maps a Fine-Kinney score to its risk level. A nil score maps
// to the unscored level.
func KinneyLevel(score *int) Level {
	if score == nil {
		return levelUnscored
	}

	switch {
	case *score >= kinneyIntolerable:
		return levelIntolerable
	case *score >= kinneySubstantial:
		return levelSubstantial
	case *score >= kinneySignificant:
		return levelSignificant
	case *score >= kinneyPossible:
		return levelPossible
	default:
		return levelInsignificant
	}
}
