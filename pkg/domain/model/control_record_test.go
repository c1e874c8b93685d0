package model_test

import (
	"sort"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

func TestControlRecord_Validate(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid record", func(t *testing.T) {
		r := &model.ControlRecord{Auditor: "A. Yılmaz", ControlDate: date}
		gt.NoError(t, r.Validate())
	})

	t.Run("missing auditor", func(t *testing.T) {
		r := &model.ControlRecord{ControlDate: date}
		gt.Error(t, r.Validate())
	})

	t.Run("missing date", func(t *testing.T) {
		r := &model.ControlRecord{Auditor: "A. Yılmaz"}
		gt.Error(t, r.Validate())
	})
}

func TestControlRecord_RecomputeResidual(t *testing.T) {
	t.Run("kinney method", func(t *testing.T) {
		r := &model.ControlRecord{
			ScoringMethod:     types.ScoringMethodFineKinney,
			KinneyProbability: fp(1),
			KinneyFrequency:   fp(3),
			KinneySeverity:    ip(7),
		}
		r.RecomputeResidual()
		gt.Value(t, r.ResidualScore).NotNil()
		gt.Number(t, *r.ResidualScore).Equal(21)
		gt.Value(t, r.Level().Label).Equal("Olası")
	})

	t.Run("matrix method ignores kinney inputs", func(t *testing.T) {
		r := &model.ControlRecord{
			ScoringMethod:     types.ScoringMethodLMatrix,
			KinneyProbability: fp(3),
			KinneyFrequency:   fp(6),
			KinneySeverity:    ip(15),
			MatrixProbability: ip(2),
			MatrixSeverity:    ip(2),
		}
		r.RecomputeResidual()
		gt.Value(t, r.ResidualScore).NotNil()
		gt.Number(t, *r.ResidualScore).Equal(4)
		gt.Value(t, r.Level().Label).Equal("Düşük")
	})

	t.Run("missing input leaves residual nil", func(t *testing.T) {
		r := &model.ControlRecord{
			ScoringMethod:     types.ScoringMethodLMatrix,
			MatrixProbability: ip(2),
		}
		r.RecomputeResidual()
		gt.Value(t, r.ResidualScore).Nil()
		gt.Value(t, r.Level().Label).Equal("-")
	})
}

func TestControlRecord_SortsBefore(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	records := []*model.ControlRecord{
		{ID: "a", ControlDate: day1, Seq: 1},
		{ID: "b", ControlDate: day2, Seq: 2},
		{ID: "c", ControlDate: day2, Seq: 3},
		{ID: "d", ControlDate: day1, Seq: 4},
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortsBefore(records[j])
	})

	// Newest control date first, later insertion first within a date
	want := []model.ControlRecordID{"c", "b", "d", "a"}
	for i, w := range want {
		gt.Value(t, records[i].ID).Equal(w)
	}
}
