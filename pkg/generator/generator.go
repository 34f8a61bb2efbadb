// Package generator defines the capability contract shared by every
// synthetic-data generator family and the registry that selects an
// implementation from a model container's library tag.
package generator

import (
	"github.com/srikesh3005/SynthoML/pkg/model"
	"github.com/srikesh3005/SynthoML/pkg/table"
)

// FitOptions carries training knobs. Epochs is meaningful only to
// deep-generative families; the statistical family ignores it.
type FitOptions struct {
	Epochs int
}

// Generator is the capability every generator family implements. Fit learns
// a model container from a training table; Sample produces synthetic rows
// from a previously fitted container. Both fail fast on the first detected
// violation and never return partial tables.
type Generator interface {
	// Library returns the tag stamped into containers this family produces.
	Library() string
	// Fit learns per-column parameters from the table. categorical names the
	// columns to fit discretely; columns not listed but natively string-kinded
	// are fitted discretely as well.
	Fit(t *table.Table, categorical []string, opts FitOptions) (*model.Container, error)
	// Sample draws n synthetic rows from the container. A nil seed gives a
	// fresh pseudo-random stream; a non-nil seed makes output byte-identical
	// across calls and process restarts.
	Sample(c *model.Container, n int, seed *int64) (*table.Table, error)
}
