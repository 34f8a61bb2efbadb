package table

import (
	"strings"
)

const missingLabel = "Unknown"

// CleanStrings normalizes every string-kinded column in place for upload and
// encoding-repair paths: non-ASCII bytes are dropped, whitespace trimmed,
// and cells that end up empty (including missing ones) become "Unknown".
// After cleaning, string columns have no missing cells.
func CleanStrings(t *Table) {
	for i := range t.columns {
		col := &t.columns[i]
		if col.Kind != KindString {
			continue
		}
		for row := range col.Strings {
			cell := ""
			if !col.IsMissing(row) {
				cell = strings.TrimSpace(toASCII(col.Strings[row]))
			}
			if cell == "" {
				cell = missingLabel
			}
			col.Strings[row] = cell
			if col.Missing != nil {
				col.Missing[row] = false
			}
		}
	}
}

func toASCII(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
