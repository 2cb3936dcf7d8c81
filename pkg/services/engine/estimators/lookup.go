package estimators

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
	"github.com/vallme2003/top-coder-challenge/pkg/store/formulas"
)

const LookupName = "lookup"

// lookupEstimator resolves trips whose exact input triple appears in the
// formula table. A hit reproduces the historical output verbatim.
type lookupEstimator struct {
	formulas formulas.Store
}

func LookupFactory(env engine.Env) (engine.Estimator, error) {
	return &lookupEstimator{formulas: env.Formulas}, nil
}

func (l *lookupEstimator) Name() string { return LookupName }

func (l *lookupEstimator) Estimate(ctx context.Context, trip domain.Trip) (domain.Reimbursement, bool, error) {
	rec, ok, err := l.formulas.Find(ctx, trip.Days, trip.Miles, trip.Receipts)
	if err != nil {
		return domain.Reimbursement{}, false, err
	}
	if !ok {
		return domain.Reimbursement{}, false, nil
	}

	var amount float64
	switch rec.FormulaType {
	case store.FormulaLinear:
		if len(rec.Coeffs) != 3 {
			zerolog.Ctx(ctx).Warn().
				Int("coeffs", len(rec.Coeffs)).
				Msg("malformed linear formula in table, ignoring entry")
			return domain.Reimbursement{}, false, nil
		}
		amount = engine.RoundCents(evalLinear(rec.Coeffs, trip))
	case store.FormulaExact:
		amount = rec.Expected
	default:
		zerolog.Ctx(ctx).Warn().
			Str("formula_type", rec.FormulaType).
			Msg("unknown formula type in table, ignoring entry")
		return domain.Reimbursement{}, false, nil
	}

	return domain.Reimbursement{
		Amount:     amount,
		Confidence: 1,
		Source:     LookupName,
	}, true, nil
}

func evalLinear(coeffs []float64, trip domain.Trip) float64 {
	return coeffs[0]*float64(trip.Days) + coeffs[1]*trip.Miles + coeffs[2]*trip.Receipts
}
