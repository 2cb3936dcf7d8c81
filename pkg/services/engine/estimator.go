package engine

import (
	"context"

	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"github.com/vallme2003/top-coder-challenge/pkg/store/formulas"
)

// Estimator produces a reimbursement amount for a trip. The second return
// value reports whether the estimator considers its result usable; a false
// return is not an error, it just hands the trip to the next estimator in
// the chain.
type Estimator interface {
	Name() string
	Estimate(ctx context.Context, trip domain.Trip) (domain.Reimbursement, bool, error)
}

// Env carries the shared dependencies estimators are built from.
type Env struct {
	Formulas formulas.Store
	Tuning   domain.Tuning
	// Plausible output range; estimators producing values outside it
	// should decline rather than return an implausible amount.
	MinPlausible float64
	MaxPlausible float64
}

// Factory creates an Estimator from the shared environment.
type Factory func(env Env) (Estimator, error)
