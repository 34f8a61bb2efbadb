package evaluate

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/srikesh3005/SynthoML/pkg/table"
)

func numericColumn(name string, values ...float64) table.Column {
	return table.Column{Name: name, Kind: table.KindNumeric, Floats: values}
}

func stringColumn(name string, values ...string) table.Column {
	return table.Column{Name: name, Kind: table.KindString, Strings: values}
}

func mustTable(columns ...table.Column) *table.Table {
	t, err := table.New(columns)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCompare(t *testing.T) {
	Convey("While comparing real and synthetic tables", t, func() {
		real := mustTable(
			numericColumn("age", 20, 30, 40, 50, 60),
			numericColumn("weight", 60, 65, 70, 75, 80),
			stringColumn("sex", "M", "M", "M", "F", "F"),
		)

		Convey("identical data scores as excellent", func() {
			result, err := Compare(real, real)
			So(err, ShouldBeNil)
			So(result.Columns, ShouldHaveLength, 3)
			for _, score := range result.Columns {
				So(score.Score, ShouldAlmostEqual, 1.0, 1e-9)
			}
			So(result.DistributionScore, ShouldAlmostEqual, 1.0, 1e-9)
			So(result.Overall, ShouldAlmostEqual, 1.0, 1e-9)
			So(result.Verdict, ShouldContainSubstring, "Excellent")
		})

		Convey("a shifted categorical distribution lowers the score by its TVD", func() {
			synthetic := mustTable(
				numericColumn("age", 20, 30, 40, 50, 60),
				numericColumn("weight", 60, 65, 70, 75, 80),
				stringColumn("sex", "M", "M", "M", "M", "F"),
			)
			result, err := Compare(real, synthetic)
			So(err, ShouldBeNil)

			var sex ColumnScore
			for _, score := range result.Columns {
				if score.Name == "sex" {
					sex = score
				}
			}
			// Real: M 0.6 / F 0.4, synthetic: M 0.8 / F 0.2 -> TVD 0.2.
			So(sex.TVD, ShouldAlmostEqual, 0.2, 1e-9)
			So(sex.Score, ShouldAlmostEqual, 0.8, 1e-9)
		})

		Convey("a wildly different numeric column bottoms out at zero", func() {
			synthetic := mustTable(
				numericColumn("age", 2000, 3000, 4000, 5000, 6000),
				numericColumn("weight", 60, 65, 70, 75, 80),
				stringColumn("sex", "M", "M", "M", "F", "F"),
			)
			result, err := Compare(real, synthetic)
			So(err, ShouldBeNil)
			So(result.Columns[0].Score, ShouldAlmostEqual, 0.0, 1e-9)
		})

		Convey("correlations are reported when two numeric columns exist", func() {
			result, err := Compare(real, real)
			So(err, ShouldBeNil)
			So(result.Correlation, ShouldNotBeNil)
			So(result.Correlation.MAE, ShouldAlmostEqual, 0.0, 1e-9)
		})

		Convey("a single numeric column yields no correlation section", func() {
			small := mustTable(
				numericColumn("age", 20, 30, 40),
				stringColumn("sex", "M", "F", "M"),
			)
			result, err := Compare(small, small)
			So(err, ShouldBeNil)
			So(result.Correlation, ShouldBeNil)
			So(result.Overall, ShouldAlmostEqual, result.DistributionScore, 1e-9)
		})

		Convey("a synthetic table missing a column is rejected", func() {
			partial := mustTable(numericColumn("age", 20, 30, 40, 50, 60))
			_, err := Compare(real, partial)
			So(err, ShouldNotBeNil)
		})

		Convey("Render produces a readable report", func() {
			result, err := Compare(real, real)
			So(err, ShouldBeNil)

			var buffer bytes.Buffer
			Render(&buffer, result)
			So(buffer.String(), ShouldContainSubstring, "age")
			So(buffer.String(), ShouldContainSubstring, "Overall quality score")
		})
	})
}
