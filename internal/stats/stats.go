// Package stats computes chart-ready aggregates over canonical
// transactions. Every function is pure given its inputs: no I/O, no stored
// state, and dirty records (unparseable dates, blank categories) are
// silently dropped rather than failing an aggregation.
package stats

import (
	"sort"
	"strings"

	"github.com/gabrielsilvacodes/financas-app/internal/category"
	"github.com/gabrielsilvacodes/financas-app/internal/format"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

// GroupByMonth buckets transactions by calendar month, keyed by the
// localized month-of-year label (e.g. "abril de 2025").
func GroupByMonth(transactions []model.Transaction) map[string][]model.Transaction {
	grouped := make(map[string][]model.Transaction)
	for _, tx := range transactions {
		date, ok := format.ParseDate(tx.Data)
		if !ok {
			continue
		}
		label := format.MonthLabel(date.Year(), int(date.Month()))
		grouped[label] = append(grouped[label], tx)
	}
	return grouped
}

// Series is a chart-ready pair of aligned label and value slices.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// MonthlySeries produces one data point per month bucket, months sorted
// chronologically ascending regardless of insertion order, summing only
// expense transactions. Labels are abbreviated month names ("Abr").
func MonthlySeries(grouped map[string][]model.Transaction) Series {
	labels := make([]string, 0, len(grouped))
	for label := range grouped {
		labels = append(labels, label)
	}

	sort.Slice(labels, func(i, j int) bool {
		yi, mi, errI := format.ParseMonthLabel(labels[i])
		yj, mj, errJ := format.ParseMonthLabel(labels[j])
		if errI != nil || errJ != nil {
			return labels[i] < labels[j]
		}
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})

	series := Series{
		Labels: make([]string, 0, len(labels)),
		Values: make([]float64, 0, len(labels)),
	}
	for _, label := range labels {
		series.Labels = append(series.Labels, format.ShortMonthLabel(label))
		series.Values = append(series.Values, SumByType(grouped[label], model.TipoSaida))
	}
	return series
}

// Slice is one chart segment: a category's display name, its summed amount
// and its color.
type Slice struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color"`
}

// CategoryBreakdown sums the expense transactions of one month bucket by
// category and joins each group to its category metadata for display name
// and color. Groups whose total is not positive are excluded; output order
// is first appearance of each category key within the filtered set.
func CategoryBreakdown(transactions []model.Transaction, monthLabel string, categories []model.Category) []Slice {
	return breakdown(expensesOnly(FilterByMonth(transactions, monthLabel)), categories)
}

// PeriodBreakdown is CategoryBreakdown over a lookback window instead of a
// month bucket. An unknown period includes all history.
func PeriodBreakdown(transactions []model.Transaction, period Period, categories []model.Category) []Slice {
	return breakdown(expensesOnly(FilterByPeriod(transactions, period)), categories)
}

// SumByType sums the amounts of all transactions matching the given type.
// Empty or unmatched input yields 0.
func SumByType(transactions []model.Transaction, tipo model.TransactionType) float64 {
	var total float64
	for _, tx := range transactions {
		if tx.Tipo.Is(tipo) {
			total += format.ParseAmount(tx.Valor)
		}
	}
	return total
}

func expensesOnly(transactions []model.Transaction) []model.Transaction {
	kept := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Tipo.Is(model.TipoSaida) {
			kept = append(kept, tx)
		}
	}
	return kept
}

func breakdown(transactions []model.Transaction, categories []model.Category) []Slice {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, tx := range transactions {
		chave := tx.Categoria.Chave
		if chave == "" {
			continue
		}
		if _, seen := totals[chave]; !seen {
			order = append(order, chave)
		}
		totals[chave] += format.ParseAmount(tx.Valor)
	}

	slices := make([]Slice, 0, len(order))
	for _, chave := range order {
		if totals[chave] <= 0 {
			continue
		}
		nome, cor := lookupCategory(categories, chave)
		slices = append(slices, Slice{Name: nome, Amount: totals[chave], Color: cor})
	}
	return slices
}

// lookupCategory resolves a category key to its display name and color.
// Unresolvable keys keep the key as name and take the fallback chart color.
func lookupCategory(categories []model.Category, chave string) (string, string) {
	for _, c := range categories {
		if strings.EqualFold(c.Chave, chave) {
			return c.Nome, c.Cor
		}
	}
	return chave, category.FallbackColor
}
