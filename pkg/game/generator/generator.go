package generator

import (
	"errors"

	"roomgraph/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(level int) (*world.Grid, error)
	Name() string
}

// ErrNoGatewaySite indicates a partition line with nowhere to put a gateway
var ErrNoGatewaySite = errors.New("generator: no gateway site on partition line")

// ErrInvalidLevel indicates a level below 1
var ErrInvalidLevel = errors.New("generator: level must be at least 1")

// New returns the default generator seeded with seed
func New(seed int64) GridGenerator {
	return NewBSPGenerator(seed)
}
