// Package model defines the persisted bundle of a generator's learned
// parameters: the per-column statistical summaries plus the metadata needed
// to select and drive the right generator implementation at sampling time.
package model

import (
	"math"

	"github.com/srikesh3005/SynthoML/pkg/errs"
)

// SummaryKind tags the variant of a ColumnSummary.
type SummaryKind int

const (
	// Categorical summaries carry a discrete empirical distribution.
	Categorical SummaryKind = iota
	// Numerical summaries carry mean, standard deviation, min and max.
	Numerical
)

// ColumnSummary is a tagged variant: either the empirical distribution of a
// categorical column (parallel Values/Probabilities, ordered by descending
// frequency, ties by first-seen order) or the four scalars of a numerical
// column.
type ColumnSummary struct {
	Kind SummaryKind

	Values        []string
	Probabilities []float64

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Container pairs fitted summaries with the metadata needed to reload and
// sample later. It is created once by fitting and never mutated afterwards;
// retraining produces a new container that replaces it.
type Container struct {
	// Library names the generator family that produced the container and
	// decides which implementation samples from it.
	Library string
	// Columns is the full ordered column list of the training table.
	Columns []string
	// Categorical is the subset of Columns fitted discretely, in column order.
	Categorical []string
	// Summaries maps every column name to its fitted summary.
	Summaries map[string]ColumnSummary
}

// IsCategorical reports whether the named column was fitted discretely.
func (c *Container) IsCategorical(name string) bool {
	for _, col := range c.Categorical {
		if col == name {
			return true
		}
	}
	return false
}

// Summary returns the fitted summary for the named column. A declared column
// without a summary is an internal inconsistency.
func (c *Container) Summary(name string) (ColumnSummary, error) {
	s, ok := c.Summaries[name]
	if !ok {
		return ColumnSummary{}, errs.NewNotFitted("no fitted summary for column %q", name)
	}
	return s, nil
}

// Validate checks the container invariants: every declared column has
// exactly one summary of the kind matching its categorical membership, the
// categorical set is a subset of the column list, and each categorical
// distribution is internally consistent.
func (c *Container) Validate() error {
	if c.Library == "" {
		return errs.NewCorruptModel("container has no library tag")
	}
	if len(c.Columns) == 0 {
		return errs.NewCorruptModel("container declares no columns")
	}

	declared := map[string]struct{}{}
	for _, name := range c.Columns {
		declared[name] = struct{}{}
	}
	for _, name := range c.Categorical {
		if _, ok := declared[name]; !ok {
			return errs.NewCorruptModel("categorical column %q is not in the column list", name)
		}
	}
	if len(c.Summaries) != len(c.Columns) {
		return errs.NewCorruptModel("container has %d summaries for %d columns", len(c.Summaries), len(c.Columns))
	}

	for _, name := range c.Columns {
		summary, ok := c.Summaries[name]
		if !ok {
			return errs.NewCorruptModel("column %q has no summary", name)
		}
		categorical := c.IsCategorical(name)
		switch summary.Kind {
		case Categorical:
			if !categorical {
				return errs.NewCorruptModel("column %q has a categorical summary but is not flagged categorical", name)
			}
			if err := validateDistribution(name, summary); err != nil {
				return err
			}
		case Numerical:
			if categorical {
				return errs.NewCorruptModel("column %q is flagged categorical but has a numerical summary", name)
			}
			if summary.Min > summary.Max {
				return errs.NewCorruptModel("column %q has min %v greater than max %v", name, summary.Min, summary.Max)
			}
		default:
			return errs.NewCorruptModel("column %q has unknown summary kind %d", name, summary.Kind)
		}
	}
	return nil
}

func validateDistribution(name string, summary ColumnSummary) error {
	if len(summary.Values) == 0 {
		return errs.NewCorruptModel("categorical column %q has no values", name)
	}
	if len(summary.Values) != len(summary.Probabilities) {
		return errs.NewCorruptModel("categorical column %q has %d values but %d probabilities",
			name, len(summary.Values), len(summary.Probabilities))
	}
	total := 0.0
	for _, p := range summary.Probabilities {
		if p < 0 {
			return errs.NewCorruptModel("categorical column %q has a negative probability", name)
		}
		total += p
	}
	if math.Abs(total-1.0) > 1e-9 {
		return errs.NewCorruptModel("categorical column %q probabilities sum to %v, want 1", name, total)
	}
	return nil
}
