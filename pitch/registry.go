package pitch

import (
	"fmt"
	"reflect"
	"sync"
)

// Func is a single type-erased conversion step. Steps are produced by
// Register from typed functions; each step validates its own input type.
type Func func(any) (any, error)

// Registry maps (from type, to type) pairs to conversion pipelines.
// A pipeline is an ordered list of steps composed left to right.
//
// Pipelines of length 1 are "explicit" — installed directly by Register.
// Longer pipelines are "implicit" — synthesized by transitive closure —
// and may be replaced by later registrations.
//
// A Registry is an explicit capability: construct one with NewRegistry
// (or tonal.StandardRegistry) and pass it to every conversion call.
// All access is guarded by an RWMutex, so concurrent registration and
// conversion are safe, though typical usage registers once at startup.
type Registry struct {
	mu        sync.RWMutex
	pipelines map[reflect.Type]map[reflect.Type][]Func
}

// NewRegistry returns an empty converter registry.
func NewRegistry() *Registry {
	return &Registry{
		pipelines: make(map[reflect.Type]map[reflect.Type][]Func),
	}
}

// explicitPolicy is the tri-state overwrite rule for explicit pipelines.
type explicitPolicy int

const (
	// explicitConflict: an existing explicit pipeline is an error (default).
	explicitConflict explicitPolicy = iota
	// explicitKeep: silently keep the existing explicit pipeline.
	explicitKeep
	// explicitOverwrite: replace the existing explicit pipeline.
	explicitOverwrite
)

// RegisterOption configures a single Register call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	explicit          explicitPolicy
	overwriteImplicit bool
	extendClosure     bool
}

func defaultRegisterConfig() registerConfig {
	return registerConfig{
		explicit:          explicitConflict,
		overwriteImplicit: true,
		extendClosure:     true,
	}
}

// WithOverwriteExplicit replaces an existing explicit converter for the
// pair instead of failing with ErrConverterExists.
func WithOverwriteExplicit() RegisterOption {
	return func(c *registerConfig) { c.explicit = explicitOverwrite }
}

// WithKeepExplicit silently keeps an existing explicit converter for the
// pair instead of failing with ErrConverterExists.
func WithKeepExplicit() RegisterOption {
	return func(c *registerConfig) { c.explicit = explicitKeep }
}

// WithKeepImplicit keeps an existing implicit (synthesized) pipeline for
// the pair. By default implicit pipelines are replaced.
func WithKeepImplicit() RegisterOption {
	return func(c *registerConfig) { c.overwriteImplicit = false }
}

// WithoutClosure skips the transitive-closure extension for this
// registration: no implicit pipelines are synthesized from it.
func WithoutClosure() RegisterOption {
	return func(c *registerConfig) { c.extendClosure = false }
}

// Register installs fn as the explicit converter From→To in r.
//
// If a pipeline already exists for the pair:
//   - explicit (length 1): ErrConverterExists unless WithOverwriteExplicit
//     (replace) or WithKeepExplicit (keep) was given;
//   - implicit (length >1): replaced, unless WithKeepImplicit was given.
//
// Unless WithoutClosure is given, the pipeline set is then extended to
// stay transitively closed: for every existing pipeline X→Y, To==X
// synthesizes From→Y as [fn]+pipeline(X→Y) and Y==From synthesizes X→To
// as pipeline(X→From)+[fn], in both cases only where no pipeline exists
// yet. The scan runs over a snapshot, so pipelines synthesized by this
// call never cascade within it.
//
// Complexity: O(P) over the number of registered pipelines.
func Register[From, To any](r *Registry, fn func(From) (To, error), opts ...RegisterOption) error {
	cfg := defaultRegisterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	from := reflect.TypeFor[From]()
	to := reflect.TypeFor[To]()
	step := func(x any) (any, error) {
		in, ok := x.(From)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not %v", ErrConversion, x, from)
		}

		return fn(in)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	install := true
	if existing, ok := r.pipelines[from][to]; ok {
		switch {
		case len(existing) == 1 && cfg.explicit == explicitConflict:
			return fmt.Errorf("%w: %v -> %v", ErrConverterExists, from, to)
		case len(existing) == 1 && cfg.explicit == explicitKeep:
			install = false
		case len(existing) > 1 && !cfg.overwriteImplicit:
			install = false
		}
	}
	if install {
		r.install(from, to, []Func{step})
	}

	if cfg.extendClosure {
		r.extendClosure(from, to, step)
	}

	return nil
}

// install writes a pipeline, creating the inner map on first use.
// Caller must hold r.mu.
func (r *Registry) install(from, to reflect.Type, pipe []Func) {
	inner, ok := r.pipelines[from]
	if !ok {
		inner = make(map[reflect.Type][]Func)
		r.pipelines[from] = inner
	}
	inner[to] = pipe
}

// extendClosure synthesizes the implicit pipelines induced by a new
// from→to step. Caller must hold r.mu.
func (r *Registry) extendClosure(from, to reflect.Type, step Func) {
	type entry struct {
		from, to reflect.Type
		pipe     []Func
	}

	// Snapshot first: the additions below must not feed themselves.
	var snapshot []entry
	for x, inner := range r.pipelines {
		for y, pipe := range inner {
			snapshot = append(snapshot, entry{from: x, to: y, pipe: pipe})
		}
	}

	for _, e := range snapshot {
		// Prepend: from→to followed by to(=e.from)→e.to.
		if to == e.from {
			if _, ok := r.pipelines[from][e.to]; !ok && e.to != from {
				r.install(from, e.to, concat([]Func{step}, e.pipe))
			}
		}
		// Append: e.from→e.to(=from) followed by from→to.
		if e.to == from {
			if _, ok := r.pipelines[e.from][to]; !ok && e.from != to {
				r.install(e.from, to, concat(e.pipe, []Func{step}))
			}
		}
	}
}

// concat returns a fresh slice holding a followed by b.
func concat(a, b []Func) []Func {
	out := make([]Func, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// Get returns a copy of the pipeline registered for from→to, or
// ErrNoConverter when the pair has none.
func (r *Registry) Get(from, to reflect.Type) ([]Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pipe, ok := r.pipelines[from][to]
	if !ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoConverter, from, to)
	}

	out := make([]Func, len(pipe))
	copy(out, pipe)

	return out, nil
}

// GetAll returns copies of all pipelines registered from the given type,
// keyed by target type, or ErrNoConverter when the type has none.
func (r *Registry) GetAll(from reflect.Type) (map[reflect.Type][]Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inner, ok := r.pipelines[from]
	if !ok || len(inner) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoConverter, from)
	}

	out := make(map[reflect.Type][]Func, len(inner))
	for to, pipe := range inner {
		cp := make([]Func, len(pipe))
		copy(cp, pipe)
		out[to] = cp
	}

	return out, nil
}

// has reports whether a pipeline exists for from→to.
func (r *Registry) has(from, to reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.pipelines[from][to]

	return ok
}
