package estimators

import (
	"context"

	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

const TieredName = "tiered"

// tieredEstimator is the terminal fallback: a hand-tuned combination of a
// tiered days*miles base curve, a per-diem component, a non-linear receipt
// curve and a handful of bonuses. It always produces a result.
type tieredEstimator struct {
	tuning domain.Tuning
}

func TieredFactory(env engine.Env) (engine.Estimator, error) {
	return &tieredEstimator{tuning: env.Tuning}, nil
}

func (t *tieredEstimator) Name() string { return TieredName }

func (t *tieredEstimator) Estimate(_ context.Context, trip domain.Trip) (domain.Reimbursement, bool, error) {
	f := engine.ExtractFeatures(trip)
	tn := t.tuning

	base := daysMilesBase(f.DaysMiles)
	perDiem := f.Days * tn.PerDiem
	receiptFactor := receiptCurve(f.Receipts)
	logBonus := f.LogReceipts * 20

	var efficiencyBonus float64
	switch {
	case f.MilesPerDay >= tn.EfficiencySweetLow && f.MilesPerDay <= tn.EfficiencySweetHigh:
		efficiencyBonus = tn.EfficiencySweetBonus
	case f.MilesPerDay >= tn.EfficiencyModerateLow && f.MilesPerDay < tn.EfficiencySweetLow:
		efficiencyBonus = tn.EfficiencyModerateBonus
	}

	var dayBonus float64
	if f.FiveDay {
		dayBonus = tn.FiveDayBonus
	}

	var roundingBonus float64
	if f.EndsIn49 || f.EndsIn99 {
		roundingBonus = tn.CentsBonus
	}

	total := base + perDiem + receiptFactor + logBonus + efficiencyBonus + dayBonus + roundingBonus

	// Very high receipt totals are capped by the legacy system.
	if f.Receipts > tn.CapReceiptsAbove && total > tn.CapTotalAbove {
		total = tn.CapBase + (total-tn.CapTotalAbove)*tn.CapSlope
	}
	if total < tn.FloorAmount {
		total = tn.FloorAmount
	}

	return domain.Reimbursement{
		Amount:     engine.RoundCents(total),
		Confidence: 0.4,
		Source:     TieredName,
		Breakdown: map[string]float64{
			"base":       base,
			"per_diem":   perDiem,
			"receipts":   receiptFactor,
			"log_bonus":  logBonus,
			"efficiency": efficiencyBonus,
			"day_bonus":  dayBonus,
			"rounding":   roundingBonus,
		},
	}, true, nil
}

// daysMilesBase is a piecewise linear curve over the days*miles interaction,
// with diminishing slopes past each knee.
func daysMilesBase(dm float64) float64 {
	switch {
	case dm < 500:
		return 100 + dm*0.8
	case dm < 2000:
		return 100 + 500*0.8 + (dm-500)*0.5
	case dm < 5000:
		return 100 + 500*0.8 + 1500*0.5 + (dm-2000)*0.3
	default:
		return 100 + 500*0.8 + 1500*0.5 + 3000*0.3 + (dm-5000)*0.15
	}
}

// receiptCurve models the non-linear influence of receipts: small amounts
// reduce the reimbursement, a mid range helps, and very high amounts see
// diminishing and then negative returns.
func receiptCurve(receipts float64) float64 {
	switch {
	case receipts < 50:
		return -50 + receipts*0.5
	case receipts < 200:
		return receipts * 0.3
	case receipts < 800:
		return 60 + receipts*0.4
	case receipts < 1500:
		return 380 + (receipts-800)*0.2
	default:
		return 520 - (receipts-1500)*0.15
	}
}
