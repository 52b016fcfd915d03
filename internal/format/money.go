// Package format converts loosely-formatted monetary and date values into
// their canonical forms. Historical records store amounts as localized
// currency strings and dates in three different shapes; everything here
// resolves to a safe default instead of failing so that aggregation and
// display never break on dirty data.
package format

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const currencyPrefix = "R$"

// ParseAmount converts a monetary value in any of its historical
// representations to a non-negative float. Numbers pass through (non-finite
// coerces to 0), strings are stripped of whitespace and the currency prefix
// before parsing with a decimal comma. Unparseable or negative input yields
// 0. It never panics.
func ParseAmount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return clampAmount(n)
	case float32:
		return clampAmount(float64(n))
	case int:
		return clampAmount(float64(n))
	case int64:
		return clampAmount(float64(n))
	case json.Number:
		return parseAmountString(n.String())
	case string:
		return parseAmountString(n)
	default:
		return 0
	}
}

// FormatAmount renders a value as Brazilian currency with two fraction
// digits, e.g. "R$ 1.234,50". Invalid input formats as the zero amount.
// ParseAmount(FormatAmount(x)) recovers x to two-decimal precision.
func FormatAmount(v any) string {
	n := ParseAmount(v)

	cents := int64(math.Round(n * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	return currencyPrefix + " " + b.String() + "," + twoDigits(frac)
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

func clampAmount(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

func parseAmountString(s string) float64 {
	// Collapse all whitespace, then drop the currency prefix.
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(s, currencyPrefix)

	// A decimal comma marks Brazilian formatting: any dots are grouping
	// separators and must go before the comma becomes the decimal point.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return clampAmount(floatPrefix(s))
}

// floatPrefix parses the longest numeric prefix of s, mirroring how the
// stored data was originally parsed. "12abc" yields 12, "abc" yields 0.
func floatPrefix(s string) float64 {
	end := 0
	seenDigit := false
	seenDot := false

	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '-' || r == '+':
			if i != 0 {
				goto done
			}
		case r == '.':
			if seenDot {
				goto done
			}
			seenDot = true
		default:
			goto done
		}
		end = i + 1
	}

done:
	if !seenDigit {
		return 0
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return n
}
