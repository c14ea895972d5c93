package tonal

import (
	"go.uber.org/multierr"

	"github.com/katalvlaran/tonal/logfreq"
	"github.com/katalvlaran/tonal/pitch"
	"github.com/katalvlaran/tonal/spelled"
)

// StandardRegistry returns a fresh converter registry wired with the
// standard cross-domain routes: spelled→enharmonic and
// enharmonic→logfreq, with spelled→logfreq synthesized by transitive
// closure. Each call returns an independent registry, so callers may
// extend or override it freely.
func StandardRegistry() (*pitch.Registry, error) {
	reg := pitch.NewRegistry()

	err := multierr.Combine(
		pitch.Register(reg, spelled.ToEnharmonic),
		pitch.Register(reg, logfreq.FromEnharmonic),
	)
	if err != nil {
		return nil, err
	}

	return reg, nil
}
