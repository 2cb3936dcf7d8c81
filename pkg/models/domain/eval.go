package domain

// EvalMetrics summarizes how well the engine reproduces the labeled cases.
type EvalMetrics struct {
	TotalCases   int
	ExactMatches int     // absolute error within the exact tolerance
	CloseMatches int     // absolute error within the close tolerance
	MAE          float64 // mean absolute error in dollars
	MaxError     float64 // largest absolute error in dollars
	Score        float64 // challenge score, lower is better
}

// ExactMatchRate returns the exact match percentage.
func (m EvalMetrics) ExactMatchRate() float64 {
	if m.TotalCases == 0 {
		return 0
	}
	return float64(m.ExactMatches) / float64(m.TotalCases) * 100
}

// CloseMatchRate returns the close match percentage.
func (m EvalMetrics) CloseMatchRate() float64 {
	if m.TotalCases == 0 {
		return 0
	}
	return float64(m.CloseMatches) / float64(m.TotalCases) * 100
}
