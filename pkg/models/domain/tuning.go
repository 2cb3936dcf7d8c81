package domain

// Tuning contains the adjustable knobs of the tiered fallback heuristic.
// Named profiles loaded from the profiles file override individual fields.
type Tuning struct {
	// PerDiem is the flat daily allowance component.
	PerDiem float64
	// FiveDayBonus is added for exactly five-day trips.
	FiveDayBonus float64
	// CentsBonus is added when the receipts amount ends in .49 or .99.
	CentsBonus float64
	// EfficiencySweetLow/High bound the miles-per-day window that earns the
	// full efficiency bonus.
	EfficiencySweetLow   float64
	EfficiencySweetHigh  float64
	EfficiencySweetBonus float64
	// EfficiencyModerateLow is the lower bound of the reduced-bonus window,
	// which extends up to EfficiencySweetLow.
	EfficiencyModerateLow   float64
	EfficiencyModerateBonus float64
	// High receipt totals are softly capped: when receipts exceed
	// CapReceiptsAbove and the computed total exceeds CapTotalAbove, the
	// total collapses to CapBase plus CapSlope times the excess.
	CapReceiptsAbove float64
	CapTotalAbove    float64
	CapBase          float64
	CapSlope         float64
	// FloorAmount is the minimum reimbursement.
	FloorAmount float64
}

// DefaultTuning returns the hand-tuned values fitted against the historical
// case set.
func DefaultTuning() Tuning {
	return Tuning{
		PerDiem:                 50,
		FiveDayBonus:            30,
		CentsBonus:              5,
		EfficiencySweetLow:      180,
		EfficiencySweetHigh:     220,
		EfficiencySweetBonus:    50,
		EfficiencyModerateLow:   100,
		EfficiencyModerateBonus: 20,
		CapReceiptsAbove:        2000,
		CapTotalAbove:           2000,
		CapBase:                 1900,
		CapSlope:                0.1,
		FloorAmount:             100,
	}
}
