package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// ReadTable picks a parser by extension and returns rows as map[header]value.
// headerRow is 1-based.
func ReadTable(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// pickHeader takes the header row and substitutes "Column N" for empty cells.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps converts row slices to maps keyed by header, skipping rows that
// are entirely empty.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := map[string]string{}
		empty := true
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = normalizeCell(rec[c])
			}
			m[headers[c]] = v
			if v != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}

// normalizeCell trims whitespace and folds non-breaking spaces.
func normalizeCell(s string) string {
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	return strings.TrimSpace(s)
}

var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveColumn finds the real header key for a wanted name. Alternatives
// are separated by "|" ("domain|website"); comparison is case- and
// punctuation-insensitive.
func resolveColumn(rec map[string]string, want string) string {
	for _, alt := range strings.Split(want, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		if _, ok := rec[alt]; ok {
			return alt
		}
		n := normHeaderKey(alt)
		for k := range rec {
			if normHeaderKey(k) == n {
				return k
			}
		}
	}
	return ""
}
