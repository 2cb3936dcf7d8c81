package store

const (
	// FormulaLinear evaluates Coeffs[0]*days + Coeffs[1]*miles + Coeffs[2]*receipts.
	FormulaLinear = "linear"
	// FormulaExact returns the memorized Expected output verbatim.
	FormulaExact = "exact"
)

// FormulaRecord maps one exact input triple to either a linear coefficient
// set or a memorized output.
type FormulaRecord struct {
	Days        int       `json:"days"`
	Miles       float64   `json:"miles"`
	Receipts    float64   `json:"receipts"`
	FormulaType string    `json:"formula_type"`
	Coeffs      []float64 `json:"coeffs,omitempty"`
	Expected    float64   `json:"expected"`
}
