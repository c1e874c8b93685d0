package model

import (
	"time"

	"github.com/osgb-lab/riskdesk/pkg/domain/scoring"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// Risk is an ad-hoc, site-specific risk belonging to exactly one case.
// Classification metadata may be copied verbatim from the external risk
// catalog at creation time. The cached scores are projections recomputed
// on every save; the raw inputs are authoritative.
type Risk struct {
	ID     int64
	CaseID int64

	Description  string
	Acceptable   *bool // nil = not yet decided
	Evidence     string
	RiskPriority *types.RiskPriority

	// Classification metadata, optionally seeded from the catalog
	Category        string
	SubCategory     string
	HazardSource    string
	LegalBasis      string
	AffectedPersons string
	MeasureText     string
	CatalogID       *int // provenance of a catalog-seeded risk

	// Remediation tracking
	MitigationStrategy types.MitigationStrategy // empty = unset
	EstimatedBudget    *float64
	ResponsiblePerson  string
	DueDate            *time.Time

	// Scoring. The method may legally diverge from the parent case's
	// method; inputs of both methods are kept side by side.
	ScoringMethod     types.ScoringMethod
	KinneyProbability *float64
	KinneyFrequency   *float64
	KinneySeverity    *int
	KinneyScore       *int
	MatrixProbability *int
	MatrixSeverity    *int
	MatrixScore       *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecomputeScores refreshes both cached scores from the raw inputs. Called
// by the persistence layer on every save so the cache never goes stale.
func (r *Risk) RecomputeScores() {
	r.KinneyScore = scoring.FineKinney(r.KinneyProbability, r.KinneyFrequency, r.KinneySeverity)
	r.MatrixScore = scoring.LMatrix(r.MatrixProbability, r.MatrixSeverity)
}

// Level resolves the display level of the risk, method-first: the L-Matrix
// score wins when the risk is scored with L-Matrix and a matrix score
// exists, then the Fine-Kinney score when one exists, otherwise unscored.
func (r *Risk) Level() scoring.Level {
	if r.ScoringMethod == types.ScoringMethodLMatrix && r.MatrixScore != nil {
		return scoring.MatrixLevel(r.MatrixScore)
	}
	if r.KinneyScore != nil {
		return scoring.KinneyLevel(r.KinneyScore)
	}
	return scoring.LevelFor(r.ScoringMethod, nil)
}

// Score returns the cached score matching the level selection rule
func (r *Risk) Score() *int {
	if r.ScoringMethod == types.ScoringMethodLMatrix && r.MatrixScore != nil {
		return r.MatrixScore
	}
	return r.KinneyScore
}

// Scored reports whether the risk has a computed score under either method
func (r *Risk) Scored() bool {
	return r.KinneyScore != nil || r.MatrixScore != nil
}

// RequiresAction reports whether the risk belongs on the action plan.
// Only risks explicitly marked not acceptable require remediation.
func (r *Risk) RequiresAction() bool {
	return r.Acceptable != nil && !*r.Acceptable
}

// ActionPlanStatus derives the remediation status of the risk from its
// attached measures. The second return value is false when the risk does
// not require remediation and must not appear on the action plan view.
func (r *Risk) ActionPlanStatus(measures []*Measure) (types.ActionPlanStatus, bool) {
	if !r.RequiresAction() {
		return "", false
	}
	return DeriveActionPlan(measures), true
}
