package fileio

import (
	"strings"
	"time"
)

// Accepted bureau date shapes, tried in order: "25-Jan-2025",
// "January 25, 2025", ISO "2025-01-25".
var dateLayouts = []string{"2-Jan-2006", "January 2, 2006", "2006-01-02"}

// normalizeDate converts a bureau date cell to ISO YYYY-MM-DD. Unparseable
// or empty cells yield nil.
func normalizeDate(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}
