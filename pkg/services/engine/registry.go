package engine

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages estimator factories by name.
type Registry interface {
	// Register adds a new estimator factory
	Register(name string, factory Factory) error
	// Create instantiates the named estimator using the provided environment
	Create(name string, env Env) (Estimator, error)
	// ListEstimators returns the registered estimator names, sorted
	ListEstimators() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry pre-populated with the given factories.
func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{factories: make(map[string]Factory, len(factories))}
	for name, factory := range factories {
		r.factories[name] = factory
	}
	return r
}

func (r *registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("estimator name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("estimator %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string, env Env) (Estimator, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("estimator %q is not registered", name)
	}

	return factory(env)
}

func (r *registry) ListEstimators() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
