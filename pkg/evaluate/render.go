package evaluate

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes a quality report as human-readable tables.
func Render(w io.Writer, result *Result) {
	fmt.Fprintln(w, "Distribution comparison:")
	columns := tablewriter.NewWriter(w)
	columns.SetHeader([]string{"column", "type", "detail", "score"})
	for _, score := range result.Columns {
		columns.Append([]string{
			score.Name,
			columnType(score),
			columnDetail(score),
			fmt.Sprintf("%.2f%%", score.Score*100),
		})
	}
	columns.Render()

	if result.Correlation != nil {
		fmt.Fprintf(w, "\nCorrelation preservation: %.4f (mean absolute error %.4f)\n",
			result.Correlation.CorrOfCorr, result.Correlation.MAE)
	} else {
		fmt.Fprintln(w, "\nNot enough numeric columns to compute correlations")
	}

	fmt.Fprintf(w, "\nAverage distribution similarity: %.2f%%\n", result.DistributionScore*100)
	fmt.Fprintf(w, "Overall quality score: %.2f%%\n", result.Overall*100)
	fmt.Fprintf(w, "Verdict: %s\n", result.Verdict)
}

func columnType(score ColumnScore) string {
	if score.Numeric {
		return "numeric"
	}
	return "categorical"
}

func columnDetail(score ColumnScore) string {
	if score.Numeric {
		return fmt.Sprintf("mean %.4f vs %.4f, std %.4f vs %.4f",
			score.RealMean, score.SynMean, score.RealStd, score.SynStd)
	}
	return fmt.Sprintf("total variation distance %.4f", score.TVD)
}
