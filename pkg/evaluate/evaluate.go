// Package evaluate measures how closely a synthetic table matches the real
// data it was modeled on: per-column marginal similarity plus preservation
// of pairwise correlations between numeric columns.
package evaluate

import (
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/srikesh3005/SynthoML/pkg/errs"
	"github.com/srikesh3005/SynthoML/pkg/table"
)

// epsilon keeps relative differences finite for zero-mean columns.
const epsilon = 1e-10

// ColumnScore holds the marginal similarity of one column. Exactly one of
// the numeric (mean/std) or categorical (TVD) detail sets is populated.
type ColumnScore struct {
	Name    string
	Numeric bool
	Score   float64

	RealMean float64
	SynMean  float64
	RealStd  float64
	SynStd   float64
	MeanDiff float64
	StdDiff  float64

	TVD float64
}

// CorrelationScore reports preservation of numeric pairwise correlations.
type CorrelationScore struct {
	MAE        float64
	CorrOfCorr float64
}

// Result is a full quality report for one real/synthetic pair.
type Result struct {
	Columns []ColumnScore
	// Correlation is nil when fewer than two numeric columns exist.
	Correlation       *CorrelationScore
	DistributionScore float64
	Overall           float64
	Verdict           string
}

// Compare scores a synthetic table against the real one column by column
// and aggregates an overall quality score with a verdict band.
func Compare(real, synthetic *table.Table) (*Result, error) {
	if real == nil || synthetic == nil {
		return nil, errs.NewInvalidArgument("both real and synthetic tables are required")
	}

	result := &Result{}
	for _, realCol := range real.Columns() {
		synCol, ok := synthetic.Column(realCol.Name)
		if !ok {
			return nil, errs.NewInvalidArgument("synthetic data is missing column %q", realCol.Name)
		}

		var score ColumnScore
		var err error
		if realCol.Kind == table.KindNumeric {
			score, err = scoreNumeric(realCol, synCol)
		} else {
			score = scoreCategorical(realCol, synCol)
		}
		if err != nil {
			return nil, err
		}
		result.Columns = append(result.Columns, score)
	}
	if len(result.Columns) == 0 {
		return nil, errs.NewData("no columns to compare")
	}

	sum := 0.0
	for _, score := range result.Columns {
		sum += score.Score
	}
	result.DistributionScore = sum / float64(len(result.Columns))

	result.Correlation = compareCorrelations(real, synthetic)

	result.Overall = result.DistributionScore
	if result.Correlation != nil {
		result.Overall = (result.DistributionScore + result.Correlation.CorrOfCorr) / 2
	}
	result.Verdict = verdict(result.Overall)

	return result, nil
}

func scoreNumeric(realCol, synCol table.Column) (ColumnScore, error) {
	realValues := columnFloats(realCol)
	synValues := columnFloats(synCol)
	if len(realValues) == 0 || len(synValues) == 0 {
		return ColumnScore{}, errs.NewData("no non-missing values in column %s", realCol.Name)
	}

	score := ColumnScore{Name: realCol.Name, Numeric: true}
	score.RealMean, _ = stats.Mean(realValues)
	score.SynMean, _ = stats.Mean(synValues)
	score.RealStd = sampleStd(realValues)
	score.SynStd = sampleStd(synValues)

	score.MeanDiff = math.Abs(score.RealMean-score.SynMean) / (math.Abs(score.RealMean) + epsilon)
	score.StdDiff = math.Abs(score.RealStd-score.SynStd) / (math.Abs(score.RealStd) + epsilon)
	score.Score = 1.0 - math.Min(1.0, (score.MeanDiff+score.StdDiff)/2)
	return score, nil
}

func scoreCategorical(realCol, synCol table.Column) ColumnScore {
	realDist := frequencies(realCol)
	synDist := frequencies(synCol)

	tvd := 0.0
	for category, p := range realDist {
		tvd += math.Abs(p - synDist[category])
	}
	for category, q := range synDist {
		if _, seen := realDist[category]; !seen {
			tvd += q
		}
	}
	tvd /= 2

	return ColumnScore{
		Name:  realCol.Name,
		TVD:   tvd,
		Score: 1.0 - tvd,
	}
}

// compareCorrelations builds Pearson correlation matrices over the numeric
// columns of both tables and compares their upper triangles. It returns nil
// when fewer than two numeric columns exist.
func compareCorrelations(real, synthetic *table.Table) *CorrelationScore {
	var numeric []string
	for _, col := range real.Columns() {
		if col.Kind == table.KindNumeric {
			numeric = append(numeric, col.Name)
		}
	}
	if len(numeric) < 2 {
		return nil
	}

	realFlat := upperTriangle(real, numeric)
	synFlat := upperTriangle(synthetic, numeric)

	mae := 0.0
	for i := range realFlat {
		mae += math.Abs(realFlat[i] - synFlat[i])
	}
	mae /= float64(len(realFlat))

	corrOfCorr := stat.Correlation(realFlat, synFlat, nil)
	if math.IsNaN(corrOfCorr) {
		// Constant correlation vectors have no defined correlation; fall
		// back to an error-based score.
		corrOfCorr = 1.0 - mae
	}

	return &CorrelationScore{MAE: mae, CorrOfCorr: corrOfCorr}
}

// upperTriangle flattens the strict upper triangle of the correlation matrix
// over the named columns, in column order.
func upperTriangle(t *table.Table, names []string) []float64 {
	var flat []float64
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			flat = append(flat, pairCorrelation(t, names[i], names[j]))
		}
	}
	return flat
}

// pairCorrelation computes the Pearson correlation over rows where both
// columns are observed.
func pairCorrelation(t *table.Table, nameX, nameY string) float64 {
	colX, okX := t.Column(nameX)
	colY, okY := t.Column(nameY)
	if !okX || !okY {
		return 0
	}

	xAll := columnFloatsWithMissing(colX)
	yAll := columnFloatsWithMissing(colY)

	var xs, ys []float64
	for row := 0; row < t.NumRows(); row++ {
		if colX.IsMissing(row) || colY.IsMissing(row) {
			continue
		}
		xs = append(xs, xAll[row])
		ys = append(ys, yAll[row])
	}
	if len(xs) < 2 {
		return 0
	}

	corr := stat.Correlation(xs, ys, nil)
	if math.IsNaN(corr) {
		return 0
	}
	return corr
}

// columnFloats returns the observed values of a column as floats. String
// columns holding numeric text (a numeric column rendered categorically)
// are parsed; unparsable cells are skipped.
func columnFloats(col table.Column) []float64 {
	if col.Kind == table.KindNumeric {
		return col.NonMissingFloats()
	}
	var values []float64
	for row, s := range col.Strings {
		if col.IsMissing(row) {
			continue
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			values = append(values, v)
		}
	}
	return values
}

// columnFloatsWithMissing returns per-row float values, zero-filled at
// missing or unparsable rows. Callers must consult IsMissing.
func columnFloatsWithMissing(col table.Column) []float64 {
	if col.Kind == table.KindNumeric {
		return col.Floats
	}
	values := make([]float64, len(col.Strings))
	for row, s := range col.Strings {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			values[row] = v
		}
	}
	return values
}

func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	std, _ := stats.StandardDeviationSample(values)
	return std
}

// frequencies returns the normalized value distribution of a column.
func frequencies(col table.Column) map[string]float64 {
	counts := map[string]int{}
	total := 0
	rows := len(col.Strings)
	if col.Kind == table.KindNumeric {
		rows = len(col.Floats)
	}
	for row := 0; row < rows; row++ {
		if col.IsMissing(row) {
			continue
		}
		counts[col.Cell(row)]++
		total++
	}
	dist := make(map[string]float64, len(counts))
	for value, count := range counts {
		dist[value] = float64(count) / float64(total)
	}
	return dist
}

func verdict(score float64) string {
	switch {
	case score >= 0.85:
		return "Excellent - Synthetic data closely matches real data"
	case score >= 0.70:
		return "Good - Synthetic data captures most patterns"
	case score >= 0.50:
		return "Fair - Some patterns preserved, room for improvement"
	default:
		return "Poor - Consider retraining with more epochs"
	}
}
