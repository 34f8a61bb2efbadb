package statistical

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/generator"
	"github.com/srikesh3005/SynthoML/pkg/model"
	"github.com/srikesh3005/SynthoML/pkg/table"
)

// Fit computes a per-column statistical summary of the training table.
// Columns listed in categorical, plus every natively string-kinded column,
// get an empirical discrete distribution; the rest get mean, sample standard
// deviation (n-1 divisor), min and max over their non-missing values.
// The epoch budget in opts is ignored. The input table is not mutated.
func (g *Generator) Fit(t *table.Table, categorical []string, opts generator.FitOptions) (*model.Container, error) {
	if t == nil || t.NumColumns() == 0 {
		return nil, errs.NewData("training table must have at least one column")
	}
	if t.NumRows() == 0 {
		return nil, errs.NewData("training table must have at least one row")
	}
	for _, name := range categorical {
		if _, ok := t.Column(name); !ok {
			return nil, errs.NewInvalidArgument("categorical column %q is not in the table", name)
		}
	}

	listed := map[string]struct{}{}
	for _, name := range categorical {
		listed[name] = struct{}{}
	}

	container := &model.Container{
		Library:     g.Library(),
		Columns:     t.ColumnNames(),
		Categorical: []string{},
		Summaries:   map[string]model.ColumnSummary{},
	}

	for _, col := range t.Columns() {
		_, isListed := listed[col.Name]
		if isListed || col.Kind == table.KindString {
			summary, err := fitCategorical(col)
			if err != nil {
				return nil, err
			}
			container.Categorical = append(container.Categorical, col.Name)
			container.Summaries[col.Name] = summary
			continue
		}

		summary, err := fitNumerical(col)
		if err != nil {
			return nil, err
		}
		container.Summaries[col.Name] = summary
	}

	if err := container.Validate(); err != nil {
		return nil, errors.Wrap(err, "fitted container failed validation")
	}

	log.Debugf("fitted %d columns (%d categorical) over %d rows",
		t.NumColumns(), len(container.Categorical), t.NumRows())
	return container, nil
}

// fitCategorical groups the observed values and stores them with their
// empirical frequencies, ordered by descending frequency with ties broken by
// first-seen order so downstream previews are deterministic.
func fitCategorical(col table.Column) (model.ColumnSummary, error) {
	observed := col.NonMissingStrings()
	if len(observed) == 0 {
		return model.ColumnSummary{}, errs.NewData("no non-missing values in column %s", col.Name)
	}

	counts := map[string]int{}
	firstSeen := []string{}
	for _, value := range observed {
		if _, ok := counts[value]; !ok {
			firstSeen = append(firstSeen, value)
		}
		counts[value]++
	}

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})

	total := float64(len(observed))
	probabilities := make([]float64, len(firstSeen))
	for i, value := range firstSeen {
		probabilities[i] = float64(counts[value]) / total
	}

	return model.ColumnSummary{
		Kind:          model.Categorical,
		Values:        firstSeen,
		Probabilities: probabilities,
	}, nil
}

// fitNumerical computes mean, sample standard deviation, min and max over
// the non-missing values. A single observation has standard deviation 0.
func fitNumerical(col table.Column) (model.ColumnSummary, error) {
	observed := col.NonMissingFloats()
	if len(observed) == 0 {
		return model.ColumnSummary{}, errs.NewData("no non-missing values in column %s", col.Name)
	}

	mean, err := stats.Mean(observed)
	if err != nil {
		return model.ColumnSummary{}, errors.Wrapf(err, "computing mean of column %q", col.Name)
	}
	min, err := stats.Min(observed)
	if err != nil {
		return model.ColumnSummary{}, errors.Wrapf(err, "computing min of column %q", col.Name)
	}
	max, err := stats.Max(observed)
	if err != nil {
		return model.ColumnSummary{}, errors.Wrapf(err, "computing max of column %q", col.Name)
	}

	stdDev := 0.0
	if len(observed) > 1 {
		stdDev, err = stats.StandardDeviationSample(observed)
		if err != nil {
			return model.ColumnSummary{}, errors.Wrapf(err, "computing standard deviation of column %q", col.Name)
		}
	}

	return model.ColumnSummary{
		Kind:   model.Numerical,
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}, nil
}
