package scoring

import "github.com/osgb-lab/riskdesk/pkg/domain/types"

// Level is the human-readable classification of a risk score. Label and
// CSSClass feed the outbound risk_level contract; Color and TextColor are
// used by report renderers.
type Level struct {
	Label     string
	CSSClass  string
	Color     string
	TextColor string
}

// Unscored reports whether the level represents a missing score
func (l Level) Unscored() bool {
	return l.CSSClass == ""
}

var (
	levelUnscored      = Level{Label: "-", CSSClass: "", Color: "#9CA3AF", TextColor: "#FFFFFF"}
	levelInsignificant = Level{Label: "Önemsiz", CSSClass: "risk-insignificant", Color: "#22C55E", TextColor: "#FFFFFF"}
	levelLow           = Level{Label: "Düşük", CSSClass: "risk-low", Color: "#22C55E", TextColor: "#FFFFFF"}
	levelPossible      = Level{Label: "Olası", CSSClass: "risk-possible", Color: "#FBBF24", TextColor: "#1F2937"}
	levelMedium        = Level{Label: "Orta", CSSClass: "risk-medium", Color: "#FBBF24", TextColor: "#1F2937"}
	levelSignificant   = Level{Label: "Önemli", CSSClass: "risk-significant", Color: "#F97316", TextColor: "#FFFFFF"}
	levelSubstantial   = Level{Label: "Esaslı", CSSClass: "risk-substantial", Color: "#EA580C", TextColor: "#FFFFFF"}
	levelIntolerable   = Level{Label: "Tolerans gösterilemez", CSSClass: "risk-intolerable", Color: "#DC2626", TextColor: "#FFFFFF"}
)

// LevelFor maps a score to its level under the given scoring method
func LevelFor(method types.ScoringMethod, score *int) Level {
	if method.Normalize() == types.ScoringMethodLMatrix {
		return MatrixLevel(score)
	}
	return KinneyLevel(score)
}
