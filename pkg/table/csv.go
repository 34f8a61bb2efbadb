package table

import (
	"bytes"
	"encoding/csv"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/srikesh3005/SynthoML/pkg/errs"
)

// utf8BOM is written on save for Windows spreadsheet compatibility and
// stripped on read.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeToUTF8 normalizes raw CSV bytes to UTF-8. Valid UTF-8 input (with or
// without BOM) passes through; anything else is decoded as Latin-1, which
// accepts every byte sequence. This mirrors the upload repair chain: the
// Latin-1 fallback can mis-render exotic encodings but never fails, so a
// malformed file still trains instead of erroring out.
func DecodeToUTF8(raw []byte) []byte {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw
	}

	log.Debug("input is not valid UTF-8, decoding as Latin-1")
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// Latin-1 maps all 256 byte values; decoding cannot fail.
		return raw
	}
	return decoded
}

// Read parses CSV data into a Table. The first record is the header. A
// column is numeric when every non-missing cell parses as a float; empty
// cells are missing. Input is encoding-normalized first.
func Read(r io.Reader) (*Table, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV data")
	}

	reader := csv.NewReader(bytes.NewReader(DecodeToUTF8(raw)))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errs.NewData("malformed CSV: %v", err)
	}
	if len(records) == 0 {
		return nil, errs.NewData("CSV file is empty")
	}
	header := records[0]
	body := records[1:]
	if len(body) == 0 {
		return nil, errs.NewData("CSV file has a header but no rows")
	}

	columns := make([]Column, 0, len(header))
	for idx, name := range header {
		columns = append(columns, buildColumn(strings.TrimSpace(name), idx, body))
	}

	return New(columns)
}

// ReadFile reads a CSV file from disk.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewNotFound("data file %q not found", path)
		}
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	t, err := Read(f)
	return t, errors.Wrapf(err, "reading %q", path)
}

// buildColumn materializes one column from raw records, inferring its kind.
func buildColumn(name string, idx int, body [][]string) Column {
	cells := make([]string, len(body))
	missing := make([]bool, len(body))
	numeric := true
	observed := 0
	for row, record := range body {
		cell := ""
		if idx < len(record) {
			cell = strings.TrimSpace(record[idx])
		}
		cells[row] = cell
		if cell == "" {
			missing[row] = true
			continue
		}
		observed++
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
		}
	}

	// A column with no observed values stays string-kinded; fitting
	// rejects it later with a precise error.
	if !numeric || observed == 0 {
		return Column{Name: name, Kind: KindString, Strings: cells, Missing: missing}
	}

	floats := make([]float64, len(body))
	for row, cell := range cells {
		if missing[row] {
			continue
		}
		floats[row], _ = strconv.ParseFloat(cell, 64)
	}
	return Column{Name: name, Kind: KindNumeric, Floats: floats, Missing: missing}
}

// Write renders the table as CSV, prefixed with a UTF-8 BOM.
func (t *Table) Write(w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return errors.Wrap(err, "writing BOM")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.ColumnNames()); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	record := make([]string, t.NumColumns())
	for row := 0; row < t.rows; row++ {
		for i, col := range t.columns {
			record[i] = col.Cell(row)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "writing CSV row %d", row)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing CSV")
}

// WriteFile saves the table as a CSV file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %q", path)
}
