package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/scoring"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

// Validation errors for control records
var (
	ErrControlAuditorRequired = goerr.New("control record auditor is required")
	ErrControlDateRequired    = goerr.New("control record date is required")
)

// ControlRecordID is a UUID-based identifier for ControlRecord
type ControlRecordID string

// NewControlRecordID generates a new UUID v4 ControlRecordID
func NewControlRecordID() ControlRecordID {
	return ControlRecordID(uuid.New().String())
}

// String returns the string representation of ControlRecordID
func (c ControlRecordID) String() string {
	return string(c)
}

// ControlRecord is one dated re-audit of an ad-hoc risk. Records are
// append-only: every audit event is retained individually and the parent
// risk's original scores are never touched. The record carries its own
// scoring method, which may differ from the parent risk's method at the
// time of creation.
type ControlRecord struct {
	ID     ControlRecordID
	RiskID int64
	Seq    int64 // repository-assigned insertion order

	ControlDate time.Time
	Auditor     string
	Note        string

	ScoringMethod     types.ScoringMethod
	KinneyProbability *float64
	KinneyFrequency   *float64
	KinneySeverity    *int
	MatrixProbability *int
	MatrixSeverity    *int

	// ResidualScore is computed at write time from the record's own inputs
	// under the record's own method
	ResidualScore *int

	CreatedAt time.Time
}

// Validate rejects records missing their audit identity before any score
// computation happens
func (c *ControlRecord) Validate() error {
	if c.Auditor == "" {
		return goerr.Wrap(ErrControlAuditorRequired, "invalid control record",
			goerr.V("risk_id", c.RiskID))
	}
	if c.ControlDate.IsZero() {
		return goerr.Wrap(ErrControlDateRequired, "invalid control record",
			goerr.V("risk_id", c.RiskID))
	}
	return nil
}

// RecomputeResidual refreshes the residual score from the record's raw
// inputs under the record's own scoring method
func (c *ControlRecord) RecomputeResidual() {
	if c.ScoringMethod.Normalize() == types.ScoringMethodLMatrix {
		c.ResidualScore = scoring.LMatrix(c.MatrixProbability, c.MatrixSeverity)
		return
	}
	c.ResidualScore = scoring.FineKinney(c.KinneyProbability, c.KinneyFrequency, c.KinneySeverity)
}

// Level returns the display level of the residual score
func (c *ControlRecord) Level() scoring.Level {
	return scoring.LevelFor(c.ScoringMethod, c.ResidualScore)
}

// SortsBefore reports whether this record comes earlier in the
// newest-first ledger order (control date desc, insertion order desc)
func (c *ControlRecord) SortsBefore(other *ControlRecord) bool {
	if !c.ControlDate.Equal(other.ControlDate) {
		return c.ControlDate.After(other.ControlDate)
	}
	return c.Seq > other.Seq
}
