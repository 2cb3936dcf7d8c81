package eval

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/adapters"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/models/store"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
)

// Settings contains the evaluation tolerances and reporting knobs.
type Settings struct {
	// ExactTolerance is the absolute error within which a prediction counts
	// as an exact match.
	ExactTolerance float64
	// CloseTolerance is the absolute error within which a prediction counts
	// as a close match.
	CloseTolerance float64
	// WorstCases is how many highest-error cases the report lists.
	WorstCases int
}

// DefaultSettings returns the challenge scoring configuration.
func DefaultSettings() Settings {
	return Settings{
		ExactTolerance: 0.01,
		CloseTolerance: 1.00,
		WorstCases:     5,
	}
}

// CaseResult is the outcome of evaluating one labeled case.
type CaseResult struct {
	Trip     domain.Trip
	Expected float64
	Actual   float64
	AbsError float64
	Source   string
}

// Evaluator scores the engine against labeled historical cases.
type Evaluator struct {
	engine   engine.Engine
	settings Settings
}

func NewEvaluator(eng engine.Engine, settings Settings) *Evaluator {
	return &Evaluator{engine: eng, settings: settings}
}

// Run evaluates every labeled case and computes the aggregate metrics.
// Unlabeled records are skipped.
func (e *Evaluator) Run(ctx context.Context, records []store.CaseRecord) (domain.EvalMetrics, []CaseResult, error) {
	logger := zerolog.Ctx(ctx)

	var results []CaseResult
	for i, rec := range records {
		if !rec.Labeled() {
			logger.Debug().Int("case", i).Msg("skipping unlabeled case")
			continue
		}

		trip := adapters.MapStoreCaseToDomainTrip(rec)
		estimate, err := e.engine.Estimate(ctx, trip)
		if err != nil {
			return domain.EvalMetrics{}, nil, fmt.Errorf("case %d failed: %w", i, err)
		}

		expected := *rec.ExpectedOutput
		results = append(results, CaseResult{
			Trip:     trip,
			Expected: expected,
			Actual:   estimate.Amount,
			AbsError: math.Abs(estimate.Amount - expected),
			Source:   estimate.Source,
		})
	}

	if len(results) == 0 {
		return domain.EvalMetrics{}, nil, fmt.Errorf("no labeled cases to evaluate")
	}

	metrics := e.computeMetrics(results)
	logger.Info().
		Int("cases", metrics.TotalCases).
		Int("exact", metrics.ExactMatches).
		Float64("mae", metrics.MAE).
		Float64("score", metrics.Score).
		Msg("evaluation complete")

	return metrics, results, nil
}

func (e *Evaluator) computeMetrics(results []CaseResult) domain.EvalMetrics {
	var sumErr, maxErr float64
	var exact, near int
	for _, r := range results {
		sumErr += r.AbsError
		if r.AbsError > maxErr {
			maxErr = r.AbsError
		}
		if r.AbsError <= e.settings.ExactTolerance {
			exact++
		}
		if r.AbsError <= e.settings.CloseTolerance {
			near++
		}
	}

	total := len(results)
	mae := sumErr / float64(total)
	return domain.EvalMetrics{
		TotalCases:   total,
		ExactMatches: exact,
		CloseMatches: near,
		MAE:          mae,
		MaxError:     maxErr,
		// Challenge score: lower is better, exact matches discount it.
		Score: mae*100 + float64(total-exact)*0.1,
	}
}

// BuildReport renders the metrics and the worst offending cases into a
// report for the terminal reporters.
func (e *Evaluator) BuildReport(metrics domain.EvalMetrics, results []CaseResult) *domain.Report {
	sorted := make([]CaseResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AbsError > sorted[j].AbsError })

	worstN := e.settings.WorstCases
	if worstN > len(sorted) {
		worstN = len(sorted)
	}

	worst := make([]domain.ReportDetail, 0, worstN)
	for _, r := range sorted[:worstN] {
		worst = append(worst, domain.ReportDetail{
			Name:        fmt.Sprintf("%dd, %.0fmi, $%.2f", r.Trip.Days, r.Trip.Miles, r.Trip.Receipts),
			Value:       fmt.Sprintf("%.2f", r.Actual),
			Unit:        "USD",
			Description: fmt.Sprintf("expected %.2f, error %.2f (%s)", r.Expected, r.AbsError, r.Source),
		})
	}

	var totalActual float64
	for _, r := range results {
		totalActual += r.Actual
	}

	return &domain.Report{
		Title:       "Reimbursement Evaluation",
		RunID:       uuid.NewString(),
		CaseCount:   metrics.TotalCases,
		TotalAmount: totalActual,
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title: "Metrics",
				Summary: map[string]interface{}{
					"Total cases":    metrics.TotalCases,
					"Exact matches":  fmt.Sprintf("%d (%.1f%%)", metrics.ExactMatches, metrics.ExactMatchRate()),
					"Close matches":  fmt.Sprintf("%d (%.1f%%)", metrics.CloseMatches, metrics.CloseMatchRate()),
					"Mean abs error": fmt.Sprintf("$%.2f", metrics.MAE),
					"Max error":      fmt.Sprintf("$%.2f", metrics.MaxError),
					"Score":          fmt.Sprintf("%.2f", metrics.Score),
				},
			},
			{
				Title:   "Worst Cases",
				Summary: map[string]interface{}{},
				Details: worst,
			},
		},
	}
}
