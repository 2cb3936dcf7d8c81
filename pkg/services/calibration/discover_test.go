package calibration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
)

func labeled(days int, miles, receipts, expected float64) store.CaseRecord {
	return store.CaseRecord{
		Input: &store.TripFields{
			TripDurationDays:    days,
			MilesTraveled:       miles,
			TotalReceiptsAmount: receipts,
		},
		ExpectedOutput: &expected,
	}
}

func TestDiscover_FindsLinearFormula(t *testing.T) {
	d := NewDiscoverer(DefaultGrids(), 0.01)

	// 110*1 + 0.6*76 + 0.2*13.74 = 158.348 -> 158.35
	records, err := d.Discover(context.Background(), []store.CaseRecord{
		labeled(1, 76, 13.74, 158.35),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, store.FormulaLinear, records[0].FormulaType)
	assert.Equal(t, []float64{110, 0.6, 0.2}, records[0].Coeffs)
	assert.Equal(t, 158.35, records[0].Expected)
}

func TestDiscover_MemorizesUnexplainedCase(t *testing.T) {
	d := NewDiscoverer(DefaultGrids(), 0.01)

	records, err := d.Discover(context.Background(), []store.CaseRecord{
		labeled(5, 250, 150.75, 581.58),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, store.FormulaExact, records[0].FormulaType)
	assert.Nil(t, records[0].Coeffs)
	assert.Equal(t, 581.58, records[0].Expected)
}

func TestDiscover_SkipsUnlabeled(t *testing.T) {
	d := NewDiscoverer(DefaultGrids(), 0.01)

	records, err := d.Discover(context.Background(), []store.CaseRecord{
		labeled(2, 89, 13.85, 234.20),
		{TripFields: store.TripFields{TripDurationDays: 1, MilesTraveled: 10}},
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDiscover_Deterministic(t *testing.T) {
	d := NewDiscoverer(DefaultGrids(), 0.01)
	cases := []store.CaseRecord{
		labeled(1, 76, 13.74, 158.35),
		labeled(2, 89, 13.85, 234.20),
		labeled(5, 250, 150.75, 581.58),
	}

	first, err := d.Discover(context.Background(), cases)
	require.NoError(t, err)
	second, err := d.Discover(context.Background(), cases)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDiscover_NoLabeledCases(t *testing.T) {
	d := NewDiscoverer(DefaultGrids(), 0.01)
	_, err := d.Discover(context.Background(), []store.CaseRecord{
		{TripFields: store.TripFields{TripDurationDays: 1}},
	})
	assert.Error(t, err)
}
