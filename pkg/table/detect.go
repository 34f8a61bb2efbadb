package table

const (
	// maxCategoricalDistinct is the distinct-count ceiling below which a
	// numeric column is treated as categorical.
	maxCategoricalDistinct = 20
	// maxCategoricalRatio is the distinct/rows ratio ceiling below which a
	// numeric column is treated as categorical.
	maxCategoricalRatio = 0.3
)

// DetectCategorical returns the names of columns to synthesize discretely:
// every string-kinded column, plus numeric columns with at most 20 distinct
// values or a distinct/rows ratio of at most 0.3. The thresholds decide
// whether a numeric-looking column (a 5-level severity score, say) gets
// discrete or clipped-normal treatment, so they are fixed, not tunable.
func DetectCategorical(t *Table) []string {
	categorical := []string{}
	for _, col := range t.Columns() {
		if col.Kind == KindString {
			categorical = append(categorical, col.Name)
			continue
		}
		distinct := col.DistinctCount()
		ratio := float64(distinct) / float64(t.NumRows())
		if distinct <= maxCategoricalDistinct || ratio <= maxCategoricalRatio {
			categorical = append(categorical, col.Name)
		}
	}
	return categorical
}
