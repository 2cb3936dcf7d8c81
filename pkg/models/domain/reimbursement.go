package domain

// Reimbursement is the outcome of a single estimation.
type Reimbursement struct {
	Amount     float64            // dollar amount, rounded to cents
	Confidence float64            // 0..1, how much the producing estimator trusts the value
	Source     string             // name of the estimator that produced the value
	Breakdown  map[string]float64 // optional per-component contributions
}
