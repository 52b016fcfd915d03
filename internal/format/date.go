package format

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// ISODate is the canonical persisted layout for transaction dates.
const ISODate = "2006-01-02"

var displayDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// IsValidDisplayDate reports whether s matches the DD/MM/YYYY display
// pattern. The check is intentionally shallow: it validates shape only, not
// calendar validity, matching how the entry form always validated dates.
func IsValidDisplayDate(s string) bool {
	return displayDateRe.MatchString(strings.TrimSpace(s))
}

// ToISODate canonicalizes a date in any of its accepted representations
// (time.Time, DD/MM/YYYY, or an ISO-prefixed string) into YYYY-MM-DD,
// discarding any time of day. Unrecognized input falls back to the current
// date with a diagnostic: for this field the system prefers availability
// over strict validation.
func ToISODate(v any) string {
	switch d := v.(type) {
	case time.Time:
		if !d.IsZero() {
			return d.Format(ISODate)
		}
	case string:
		s := strings.TrimSpace(d)
		if IsValidDisplayDate(s) {
			parts := strings.Split(s, "/")
			return parts[2] + "-" + parts[1] + "-" + parts[0]
		}
		if strings.Contains(s, "-") {
			date, _, _ := strings.Cut(s, "T")
			return date
		}
	}

	slog.Warn("unrecognized date input, falling back to current date", "input", v)
	return time.Now().Format(ISODate)
}

// ToDisplayDate converts a canonical ISO date (optionally carrying a time
// component) to DD/MM/YYYY. Empty or malformed input yields an empty string,
// never a fallback date.
func ToDisplayDate(iso string) string {
	s := strings.TrimSpace(iso)
	if s == "" {
		return ""
	}
	s, _, _ = strings.Cut(s, "T")

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ParseDate converts a stored date in any accepted shape (ISO date, full ISO
// datetime, or DD/MM/YYYY) into a date-only time.Time. The second return
// reports success; aggregation silently drops records it cannot date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if IsValidDisplayDate(s) {
		parts := strings.Split(s, "/")
		s = parts[2] + "-" + parts[1] + "-" + parts[0]
	} else if strings.Contains(s, "T") {
		s, _, _ = strings.Cut(s, "T")
	}

	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateOnly truncates a time to midnight UTC so date comparisons ignore the
// time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
