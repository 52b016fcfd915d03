package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Month names as rendered by the statistics screens (pt-BR).
var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthLabel renders the localized month-of-year bucket label used by the
// statistics aggregator, e.g. "abril de 2025".
func MonthLabel(year int, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return fmt.Sprintf("%s de %d", monthNames[month-1], year)
}

// ShortMonthLabel abbreviates a month label to its first three letters,
// capitalized: "abril de 2025" becomes "Abr".
func ShortMonthLabel(label string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(label), " ")
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	if len(r) > 3 {
		r = r[:3]
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ParseMonthLabel resolves a "month de year" label back to its numeric year
// and month, for chronological sorting of buckets.
func ParseMonthLabel(label string) (year int, month int, err error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("invalid month label: %q", label)
	}

	year, err = strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in month label %q: %w", label, err)
	}

	for i, name := range monthNames {
		if name == fields[0] {
			return year, i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown month in label: %q", label)
}
