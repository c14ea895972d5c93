package pitch

import "errors"

var (
	// ErrNoConverter indicates no conversion pipeline is registered for the
	// requested from/to pair.
	ErrNoConverter = errors.New("pitch: no converter registered")

	// ErrConversion indicates a converter returned a value whose type does
	// not match the pipeline's expectation.
	ErrConversion = errors.New("pitch: converter output type mismatch")

	// ErrConverterExists indicates an explicit converter is already
	// installed for the pair and no overwrite policy was chosen.
	ErrConverterExists = errors.New("pitch: explicit converter already registered")

	// ErrNoPeriod indicates a phase computation in a domain that declares
	// no period.
	ErrNoPeriod = errors.New("pitch: domain has no period")
)
