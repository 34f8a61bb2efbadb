package table

import (
	"bytes"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/srikesh3005/SynthoML/pkg/errs"
)

func TestDecodeToUTF8(t *testing.T) {
	Convey("While normalizing raw CSV bytes", t, func() {
		Convey("valid UTF-8 passes through", func() {
			So(DecodeToUTF8([]byte("age,naïve\n")), ShouldResemble, []byte("age,naïve\n"))
		})

		Convey("a UTF-8 BOM is stripped", func() {
			raw := append(append([]byte{}, utf8BOM...), []byte("age\n1\n")...)
			So(DecodeToUTF8(raw), ShouldResemble, []byte("age\n1\n"))
		})

		Convey("Latin-1 bytes are repaired to UTF-8", func() {
			// 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
			decoded := DecodeToUTF8([]byte{'c', 'a', 'f', 0xE9})
			So(string(decoded), ShouldEqual, "café")
		})
	})
}

func TestReadCSV(t *testing.T) {
	Convey("While reading CSV data", t, func() {
		Convey("columns get their kind from cell contents", func() {
			tbl, err := Read(strings.NewReader("age,sex\n20,M\n30,F\n"))
			So(err, ShouldBeNil)
			So(tbl.NumRows(), ShouldEqual, 2)

			age, _ := tbl.Column("age")
			So(age.Kind, ShouldEqual, KindNumeric)
			So(age.Floats, ShouldResemble, []float64{20, 30})

			sex, _ := tbl.Column("sex")
			So(sex.Kind, ShouldEqual, KindString)
		})

		Convey("one unparsable cell makes the whole column string-kinded", func() {
			tbl, err := Read(strings.NewReader("mixed\n1\ntwo\n3\n"))
			So(err, ShouldBeNil)
			mixed, _ := tbl.Column("mixed")
			So(mixed.Kind, ShouldEqual, KindString)
		})

		Convey("empty cells are missing and excluded from kind inference", func() {
			tbl, err := Read(strings.NewReader("age,sex\n20,M\n,F\n40,M\n"))
			So(err, ShouldBeNil)
			age, _ := tbl.Column("age")
			So(age.Kind, ShouldEqual, KindNumeric)
			So(age.IsMissing(1), ShouldBeTrue)
			So(age.NonMissingFloats(), ShouldResemble, []float64{20, 40})
		})

		Convey("an empty file is a data error", func() {
			_, err := Read(strings.NewReader(""))
			So(errs.IsData(err), ShouldBeTrue)
		})

		Convey("a header without rows is a data error", func() {
			_, err := Read(strings.NewReader("age,sex\n"))
			So(errs.IsData(err), ShouldBeTrue)
		})
	})
}

func TestCSVFiles(t *testing.T) {
	Convey("While reading and writing CSV files", t, func() {
		dir, err := ioutil.TempDir("", "csv")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		Convey("a written file starts with a BOM and reads back equal", func() {
			tbl, err := New([]Column{
				{Name: "age", Kind: KindNumeric, Floats: []float64{20.5, 30}, Missing: []bool{false, false}},
				{Name: "sex", Kind: KindString, Strings: []string{"M", "F"}},
			})
			So(err, ShouldBeNil)

			csvPath := path.Join(dir, "out.csv")
			So(tbl.WriteFile(csvPath), ShouldBeNil)

			raw, err := ioutil.ReadFile(csvPath)
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(raw, utf8BOM), ShouldBeTrue)

			reloaded, err := ReadFile(csvPath)
			So(err, ShouldBeNil)
			age, _ := reloaded.Column("age")
			So(age.Floats, ShouldResemble, []float64{20.5, 30})
		})

		Convey("a missing file is a not-found error", func() {
			_, err := ReadFile(path.Join(dir, "absent.csv"))
			So(errs.IsNotFound(err), ShouldBeTrue)
		})
	})
}
