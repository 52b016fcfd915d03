package stats

import (
	"strings"
	"time"

	"github.com/gabrielsilvacodes/financas-app/internal/format"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

// Period selects the lookback window for period-bounded aggregates.
type Period string

const (
	// Period7Days keeps transactions from the last seven days.
	Period7Days Period = "7dias"
	// Period30Days keeps transactions from the last thirty days.
	Period30Days Period = "30dias"
	// PeriodMonth keeps transactions of the current calendar month.
	PeriodMonth Period = "mes"
	// PeriodYear keeps transactions from the last year.
	PeriodYear Period = "ano"
)

// FilterByPeriod returns the transactions dated on or after the period's
// cutoff (today minus 7 days, 30 days, or 1 year; "mes" means the current
// calendar month). An unknown period applies no cutoff and keeps all
// history. Transactions without a parseable date are dropped.
func FilterByPeriod(transactions []model.Transaction, period Period) []model.Transaction {
	return filterByPeriodAt(transactions, period, time.Now())
}

func filterByPeriodAt(transactions []model.Transaction, period Period, now time.Time) []model.Transaction {
	today := format.DateOnly(now)

	kept := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		date, ok := format.ParseDate(tx.Data)
		if !ok {
			continue
		}
		if inPeriod(date, period, today) {
			kept = append(kept, tx)
		}
	}
	return kept
}

func inPeriod(date time.Time, period Period, today time.Time) bool {
	switch period {
	case Period7Days:
		return !date.Before(today.AddDate(0, 0, -7))
	case Period30Days:
		return !date.Before(today.AddDate(0, 0, -30))
	case PeriodMonth:
		return date.Year() == today.Year() && date.Month() == today.Month()
	case PeriodYear:
		return !date.Before(today.AddDate(-1, 0, 0))
	default:
		return true
	}
}

// FilterByMonth returns the transactions falling in the given month bucket,
// matched against its localized label ("abril de 2025"), case-insensitively.
func FilterByMonth(transactions []model.Transaction, monthLabel string) []model.Transaction {
	ref := strings.ToLower(strings.TrimSpace(monthLabel))

	kept := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		date, ok := format.ParseDate(tx.Data)
		if !ok {
			continue
		}
		label := format.MonthLabel(date.Year(), int(date.Month()))
		if strings.ToLower(label) == ref {
			kept = append(kept, tx)
		}
	}
	return kept
}
