package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osgb-lab/riskdesk/pkg/domain/model"
)

type controlRecordRepository struct {
	mu      sync.RWMutex
	records map[int64][]*model.ControlRecord // keyed by risk ID
	nextSeq int64
}

func newControlRecordRepository() *controlRecordRepository {
	return &controlRecordRepository{
		records: make(map[int64][]*model.ControlRecord),
		nextSeq: 1,
	}
}

func copyControlRecord(r *model.ControlRecord) *model.ControlRecord {
	copied := *r
	copied.KinneyProbability = copyPtr(r.KinneyProbability)
	copied.KinneyFrequency = copyPtr(r.KinneyFrequency)
	copied.KinneySeverity = copyPtr(r.KinneySeverity)
	copied.MatrixProbability = copyPtr(r.MatrixProbability)
	copied.MatrixSeverity = copyPtr(r.MatrixSeverity)
	copied.ResidualScore = copyPtr(r.ResidualScore)
	return &copied
}

func (r *controlRecordRepository) Append(ctx context.Context, record *model.ControlRecord) (*model.ControlRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyControlRecord(record)
	if stored.ID == "" {
		stored.ID = model.NewControlRecordID()
	}
	stored.Seq = r.nextSeq
	stored.CreatedAt = time.Now().UTC()
	stored.RecomputeResidual()
	r.nextSeq++

	r.records[stored.RiskID] = append(r.records[stored.RiskID], stored)
	return copyControlRecord(stored), nil
}

func (r *controlRecordRepository) ListByRisk(ctx context.Context, riskID int64) ([]*model.ControlRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.records[riskID]
	records := make([]*model.ControlRecord, 0, len(stored))
	for _, rec := range stored {
		records = append(records, copyControlRecord(rec))
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortsBefore(records[j])
	})

	return records, nil
}

func (r *controlRecordRepository) deleteByRisk(riskID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, riskID)
}
