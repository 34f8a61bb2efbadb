// Package statistical implements the self-contained fallback generator: it
// learns per-column marginal distributions from a training table and samples
// synthetic rows from them. Categorical columns are drawn from their
// empirical frequencies; numerical columns from a normal fit clipped to the
// observed range. No deep-generative machinery is involved.
package statistical

import (
	"github.com/srikesh3005/SynthoML/pkg/generator"
)

// Generator implements the generator capability for the statistical family.
type Generator struct{}

// New returns the statistical generator.
func New() *Generator {
	return &Generator{}
}

// Library returns the tag stamped into containers this family produces.
func (g *Generator) Library() string {
	return generator.LibraryStatistical
}

func init() {
	generator.Register(New())
}
