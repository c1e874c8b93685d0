package interfaces

import (
	"context"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

// ControlRecordRepository defines the interface for the residual-risk
// control ledger. The ledger is append-only: there is no update operation,
// and records are never summarized or merged.
type ControlRecordRepository interface {
	// Append persists a new control record with a repository-assigned
	// insertion sequence. Concurrent appends on the same risk are all
	// retained; records are independent facts, not a mutable cell.
	Append(ctx context.Context, record *model.ControlRecord) (*model.ControlRecord, error)

	// ListByRisk retrieves all control records of a risk, newest first by
	// (control date desc, insertion order desc)
	ListByRisk(ctx context.Context, riskID int64) ([]*model.ControlRecord, error)
}
