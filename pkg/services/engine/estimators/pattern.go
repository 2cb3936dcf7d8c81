package estimators

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
	"github.com/vallme2003/top-coder-challenge/pkg/store/formulas"
)

const PatternName = "pattern"

// maxPatternScore is the similarity threshold beyond which a neighboring
// formula is not trusted for extrapolation.
const maxPatternScore = 0.5

// patternEstimator extrapolates from the closest linear formula with the
// same trip duration. Similarity weighs the day delta three times heavier
// than miles and receipts; requiring an identical day count keeps the day
// term at zero and the formula within its fitted regime.
type patternEstimator struct {
	formulas formulas.Store
	min      float64
	max      float64
}

func PatternFactory(env engine.Env) (engine.Estimator, error) {
	return &patternEstimator{
		formulas: env.Formulas,
		min:      env.MinPlausible,
		max:      env.MaxPlausible,
	}, nil
}

func (p *patternEstimator) Name() string { return PatternName }

func (p *patternEstimator) Estimate(ctx context.Context, trip domain.Trip) (domain.Reimbursement, bool, error) {
	records, err := p.formulas.ListFormulas(ctx)
	if err != nil {
		return domain.Reimbursement{}, false, err
	}

	var best *store.FormulaRecord
	bestScore := math.Inf(1)
	for i, rec := range records {
		if rec.FormulaType != store.FormulaLinear || rec.Days != trip.Days {
			continue
		}
		score := similarity(trip, rec)
		if score < bestScore {
			bestScore = score
			best = &records[i]
		}
	}

	if best == nil || bestScore >= maxPatternScore {
		return domain.Reimbursement{}, false, nil
	}

	amount := engine.RoundCents(evalLinear(best.Coeffs, trip))
	if amount < p.min || amount > p.max {
		zerolog.Ctx(ctx).Debug().
			Float64("amount", amount).
			Float64("score", bestScore).
			Msg("pattern extrapolation outside plausible range, declining")
		return domain.Reimbursement{}, false, nil
	}

	return domain.Reimbursement{
		Amount:     amount,
		Confidence: 1 - bestScore,
		Source:     PatternName,
	}, true, nil
}

func similarity(trip domain.Trip, rec store.FormulaRecord) float64 {
	daysDiff := math.Abs(float64(trip.Days-rec.Days)) / math.Max(float64(rec.Days), 1)
	milesDiff := math.Abs(trip.Miles-rec.Miles) / math.Max(rec.Miles, 1)
	receiptsDiff := math.Abs(trip.Receipts-rec.Receipts) / math.Max(rec.Receipts, 1)
	return daysDiff*3 + milesDiff + receiptsDiff
}
