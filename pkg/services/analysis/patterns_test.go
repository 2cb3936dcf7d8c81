package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
)

type mockEngine struct{ mock.Mock }

func (m *mockEngine) Estimate(ctx context.Context, trip domain.Trip) (domain.Reimbursement, error) {
	args := m.Called(ctx, trip)
	return args.Get(0).(domain.Reimbursement), args.Error(1)
}

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

func TestAnalyze_BucketsAndFindings(t *testing.T) {
	ctx := context.Background()
	eng := new(mockEngine)
	// Single-day cases are modeled perfectly; the 4-6 day bucket is off by
	// $300 per case and must be flagged high severity.
	eng.On("Estimate", mock.Anything, mock.MatchedBy(func(trip domain.Trip) bool { return trip.Days == 1 })).
		Return(domain.Reimbursement{Amount: 150}, nil)
	eng.On("Estimate", mock.Anything, mock.MatchedBy(func(trip domain.Trip) bool { return trip.Days == 5 })).
		Return(domain.Reimbursement{Amount: 500}, nil)

	var records []store.CaseRecord
	for i := 0; i < 3; i++ {
		records = append(records, labeled(1, 40, 20, 150))
		records = append(records, labeled(5, 600, 700, 800))
	}

	settings := Settings{ErrorThreshold: 100, HighErrorThreshold: 250, MinBucketSize: 3}
	report, err := Analyze(ctx, records, eng, settings)
	require.NoError(t, err)

	assert.Equal(t, 6, report.CaseCount)
	assert.InDelta(t, 3*150+3*800, report.TotalAmount, 1e-9)
	require.GreaterOrEqual(t, len(report.Sections), 4)

	dayDetails := report.Sections[0].Details
	require.Len(t, dayDetails, 2)
	assert.Equal(t, "1", dayDetails[0].Name)
	assert.Equal(t, 3, dayDetails[0].Value)
	assert.Contains(t, dayDetails[0].Description, "mean abs error $0.00")
	assert.Equal(t, "4-6", dayDetails[1].Name)
	assert.Contains(t, dayDetails[1].Description, "mean abs error $300.00")

	findings := report.Sections[len(report.Sections)-1]
	assert.Equal(t, "Findings", findings.Title)
	require.NotEmpty(t, findings.Details)
	assert.Equal(t, "days:4-6", findings.Details[0].Name)
	assert.Equal(t, "high", findings.Details[0].Value)
}

func TestAnalyze_SmallBucketsNotFlagged(t *testing.T) {
	eng := new(mockEngine)
	eng.On("Estimate", mock.Anything, mock.Anything).
		Return(domain.Reimbursement{Amount: 0}, nil)

	report, err := Analyze(context.Background(), []store.CaseRecord{
		labeled(1, 40, 20, 900),
	}, eng, DefaultSettings())
	require.NoError(t, err)

	findings := report.Sections[len(report.Sections)-1]
	assert.Equal(t, 0, findings.Summary["total"])
}

func TestAnalyze_CentsPremiumSection(t *testing.T) {
	eng := new(mockEngine)
	eng.On("Estimate", mock.Anything, mock.Anything).
		Return(domain.Reimbursement{Amount: 100}, nil)

	report, err := Analyze(context.Background(), []store.CaseRecord{
		labeled(1, 40, 20.49, 120),
		labeled(1, 40, 20, 100),
	}, eng, DefaultSettings())
	require.NoError(t, err)

	var found bool
	for _, s := range report.Sections {
		if s.Title == "Receipt Cents Endings" {
			found = true
			assert.Equal(t, 1, s.Summary[".49/.99 cases"])
			assert.Equal(t, "$20.00", s.Summary["premium"])
		}
	}
	assert.True(t, found)
}

func TestAnalyze_NoLabeledCases(t *testing.T) {
	_, err := Analyze(context.Background(), []store.CaseRecord{
		{TripFields: store.TripFields{TripDurationDays: 1}},
	}, new(mockEngine), DefaultSettings())
	assert.Error(t, err)
}
