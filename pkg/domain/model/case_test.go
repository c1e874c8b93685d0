package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

func TestCase_ProgressPercentage(t *testing.T) {
	toolID := types.ToolID("office-safety")

	t.Run("structured case counts answered questions", func(t *testing.T) {
		c := &model.Case{ToolID: &toolID}
		gt.Number(t, c.ProgressPercentage(4, 10, 0, 0)).Equal(40)
		gt.Number(t, c.ProgressPercentage(0, 10, 0, 0)).Equal(0)
		gt.Number(t, c.ProgressPercentage(10, 10, 0, 0)).Equal(100)
	})

	t.Run("structured case rounds to nearest", func(t *testing.T) {
		c := &model.Case{ToolID: &toolID}
		gt.Number(t, c.ProgressPercentage(1, 3, 0, 0)).Equal(33)
		gt.Number(t, c.ProgressPercentage(2, 3, 0, 0)).Equal(67)
	})

	t.Run("fast-track case counts scored risks", func(t *testing.T) {
		c := &model.Case{}
		gt.Number(t, c.ProgressPercentage(0, 0, 3, 4)).Equal(75)
		gt.Number(t, c.ProgressPercentage(0, 0, 0, 0)).Equal(0)
	})

	t.Run("fast-track ignores question counts entirely", func(t *testing.T) {
		c := &model.Case{}
		gt.Number(t, c.ProgressPercentage(4, 10, 2, 2)).Equal(100)
	})
}

func TestCase_IsFastTrack(t *testing.T) {
	toolID := types.ToolID("office-safety")
	gt.Value(t, (&model.Case{}).IsFastTrack()).Equal(true)
	gt.Value(t, (&model.Case{ToolID: &toolID}).IsFastTrack()).Equal(false)
}

func TestCase_ValidUntil(t *testing.T) {
	completed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("draft case has no expiry", func(t *testing.T) {
		c := &model.Case{Status: types.CaseStatusDraft}
		gt.Value(t, c.ValidUntil(types.HazardClassHigh)).Nil()
	})

	t.Run("completed case expires per hazard class", func(t *testing.T) {
		c := &model.Case{Status: types.CaseStatusCompleted, CompletedAt: &completed}

		high := c.ValidUntil(types.HazardClassHigh)
		gt.Value(t, high).NotNil()
		gt.Value(t, high.Year()).Equal(2027)

		low := c.ValidUntil(types.HazardClassLow)
		gt.Value(t, low).NotNil()
		gt.Value(t, low.Year()).Equal(2031)
	})
}
