package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
)

// Engine maps a trip to a reimbursement amount by walking a prioritized
// chain of estimators. The mapping is pure: identical inputs always yield
// identical outputs.
type Engine interface {
	Estimate(ctx context.Context, trip domain.Trip) (domain.Reimbursement, error)
}

// Options configure the estimator chain.
type Options struct {
	// Chain lists estimator names in priority order. The first estimator
	// that reports a usable result wins.
	Chain []string
	// MinPlausible and MaxPlausible bound the final amount. Results outside
	// the range are clamped and logged.
	MinPlausible float64
	MaxPlausible float64
}

type chainEngine struct {
	estimators []Estimator
	min        float64
	max        float64
}

// NewEngine instantiates the named estimators from the registry and wires
// them into a chain.
func NewEngine(reg Registry, env Env, opts Options) (Engine, error) {
	if len(opts.Chain) == 0 {
		return nil, fmt.Errorf("estimator chain cannot be empty")
	}

	estimators := make([]Estimator, 0, len(opts.Chain))
	for _, name := range opts.Chain {
		est, err := reg.Create(name, env)
		if err != nil {
			return nil, fmt.Errorf("failed to create estimator %q: %w", name, err)
		}
		estimators = append(estimators, est)
	}

	return &chainEngine{
		estimators: estimators,
		min:        opts.MinPlausible,
		max:        opts.MaxPlausible,
	}, nil
}

func (e *chainEngine) Estimate(ctx context.Context, trip domain.Trip) (domain.Reimbursement, error) {
	logger := zerolog.Ctx(ctx)

	if err := trip.Validate(); err != nil {
		return domain.Reimbursement{}, fmt.Errorf("invalid trip: %w", err)
	}

	for _, est := range e.estimators {
		result, ok, err := est.Estimate(ctx, trip)
		if err != nil {
			// A failing estimator is not fatal: the legacy behavior is to
			// silently fall through to the next rule.
			logger.Warn().Err(err).Str("estimator", est.Name()).Msg("estimator failed, falling through")
			continue
		}
		if !ok {
			continue
		}
		return e.clamp(ctx, result), nil
	}

	return domain.Reimbursement{}, fmt.Errorf("no estimator produced a usable result")
}

func (e *chainEngine) clamp(ctx context.Context, result domain.Reimbursement) domain.Reimbursement {
	clamped := result.Amount
	if clamped < e.min {
		clamped = e.min
	}
	if clamped > e.max {
		clamped = e.max
	}
	if clamped != result.Amount {
		zerolog.Ctx(ctx).Warn().
			Str("estimator", result.Source).
			Float64("amount", result.Amount).
			Float64("clamped", clamped).
			Msg("estimate outside plausible range")
		result.Amount = clamped
	}
	result.Amount = RoundCents(result.Amount)
	return result
}
