package estimators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

type mockFormulaStore struct{ mock.Mock }

func (m *mockFormulaStore) ListFormulas(ctx context.Context) ([]store.FormulaRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.FormulaRecord), args.Error(1)
}

func (m *mockFormulaStore) Find(ctx context.Context, days int, miles, receipts float64) (store.FormulaRecord, bool, error) {
	args := m.Called(ctx, days, miles, receipts)
	return args.Get(0).(store.FormulaRecord), args.Bool(1), args.Error(2)
}

func (m *mockFormulaStore) SaveFormulas(ctx context.Context, records []store.FormulaRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func TestLookup_LinearHit(t *testing.T) {
	ctx := context.Background()
	fs := new(mockFormulaStore)
	fs.On("Find", mock.Anything, 1, 76.0, 13.74).Return(store.FormulaRecord{
		Days: 1, Miles: 76, Receipts: 13.74,
		FormulaType: store.FormulaLinear,
		Coeffs:      []float64{110, 0.6, 0.2},
		Expected:    158.35,
	}, true, nil)

	est, err := LookupFactory(engine.Env{Formulas: fs})
	require.NoError(t, err)

	result, ok, err := est.Estimate(ctx, domain.Trip{Days: 1, Miles: 76, Receipts: 13.74})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 158.35, result.Amount)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, LookupName, result.Source)
	fs.AssertExpectations(t)
}

func TestLookup_ExactHit(t *testing.T) {
	fs := new(mockFormulaStore)
	fs.On("Find", mock.Anything, 5, 250.0, 150.75).Return(store.FormulaRecord{
		Days: 5, Miles: 250, Receipts: 150.75,
		FormulaType: store.FormulaExact,
		Expected:    581.58,
	}, true, nil)

	est, err := LookupFactory(engine.Env{Formulas: fs})
	require.NoError(t, err)

	result, ok, err := est.Estimate(context.Background(), domain.Trip{Days: 5, Miles: 250, Receipts: 150.75})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 581.58, result.Amount)
}

func TestLookup_Miss(t *testing.T) {
	fs := new(mockFormulaStore)
	fs.On("Find", mock.Anything, 9, 999.0, 9.99).Return(store.FormulaRecord{}, false, nil)

	est, err := LookupFactory(engine.Env{Formulas: fs})
	require.NoError(t, err)

	_, ok, err := est.Estimate(context.Background(), domain.Trip{Days: 9, Miles: 999, Receipts: 9.99})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookup_MalformedLinearDeclines(t *testing.T) {
	fs := new(mockFormulaStore)
	fs.On("Find", mock.Anything, 2, 10.0, 1.0).Return(store.FormulaRecord{
		Days: 2, Miles: 10, Receipts: 1,
		FormulaType: store.FormulaLinear,
		Coeffs:      []float64{100},
	}, true, nil)

	est, err := LookupFactory(engine.Env{Formulas: fs})
	require.NoError(t, err)

	_, ok, err := est.Estimate(context.Background(), domain.Trip{Days: 2, Miles: 10, Receipts: 1})
	require.NoError(t, err)
	assert.False(t, ok)
}
