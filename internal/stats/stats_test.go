package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielsilvacodes/financas-app/internal/category"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

func tx(tipo model.TransactionType, valor float64, chave, data string) model.Transaction {
	return model.Transaction{
		ID:        "id-" + chave + "-" + data,
		Titulo:    "t",
		Valor:     valor,
		Tipo:      tipo,
		Categoria: model.CategoryRef{Chave: chave},
		Data:      data,
	}
}

func TestGroupByMonth(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TipoSaida, 50, "alimentacao", "2025-04-10"),
		tx(model.TipoEntrada, 100, "salario", "2025-04-05"),
		tx(model.TipoSaida, 30, "lazer", "2025-03-20"),
		tx(model.TipoSaida, 10, "lazer", "sem data"),
	}

	grouped := GroupByMonth(transactions)

	require.Len(t, grouped, 2)
	assert.Len(t, grouped["abril de 2025"], 2)
	assert.Len(t, grouped["março de 2025"], 1)
}

func TestMonthlySeries(t *testing.T) {
	t.Run("chronological regardless of insertion order", func(t *testing.T) {
		transactions := []model.Transaction{
			tx(model.TipoSaida, 300, "lazer", "2025-04-01"),
			tx(model.TipoSaida, 100, "lazer", "2024-12-15"),
			tx(model.TipoSaida, 200, "lazer", "2025-01-10"),
		}

		series := MonthlySeries(GroupByMonth(transactions))

		require.Equal(t, len(series.Labels), len(series.Values))
		assert.Equal(t, []string{"Dez", "Jan", "Abr"}, series.Labels)
		assert.Equal(t, []float64{100, 200, 300}, series.Values)
	})

	t.Run("sums only expenses", func(t *testing.T) {
		transactions := []model.Transaction{
			tx(model.TipoSaida, 50, "alimentacao", "2025-04-10"),
			tx(model.TipoSaida, 25, "lazer", "2025-04-12"),
			tx(model.TipoEntrada, 1000, "salario", "2025-04-05"),
		}

		series := MonthlySeries(GroupByMonth(transactions))

		require.Len(t, series.Values, 1)
		assert.InDelta(t, 75, series.Values[0], 0.001)
	})

	t.Run("empty input", func(t *testing.T) {
		series := MonthlySeries(GroupByMonth(nil))
		assert.Empty(t, series.Labels)
		assert.Empty(t, series.Values)
	})
}

func TestCategoryBreakdown(t *testing.T) {
	categories := []model.Category{
		{Chave: "alimentacao", Nome: "Alimentação", Cor: "#E76F51"},
		{Chave: "lazer", Nome: "Lazer", Cor: "#E5989B"},
	}

	t.Run("sums per category for the month", func(t *testing.T) {
		transactions := []model.Transaction{
			tx(model.TipoSaida, 50, "alimentacao", "2025-04-10"),
			tx(model.TipoSaida, 20, "alimentacao", "2025-04-20"),
			tx(model.TipoSaida, 30, "lazer", "2025-04-15"),
			tx(model.TipoSaida, 99, "lazer", "2025-03-15"), // other month
		}

		got := CategoryBreakdown(transactions, "abril de 2025", categories)

		require.Len(t, got, 2)
		assert.Equal(t, Slice{Name: "Alimentação", Amount: 70, Color: "#E76F51"}, got[0])
		assert.Equal(t, Slice{Name: "Lazer", Amount: 30, Color: "#E5989B"}, got[1])
	})

	t.Run("never includes income", func(t *testing.T) {
		transactions := []model.Transaction{
			tx(model.TipoEntrada, 1000, "salario", "2025-04-05"),
			tx(model.TipoSaida, 50, "alimentacao", "2025-04-10"),
		}

		got := CategoryBreakdown(transactions, "abril de 2025", categories)

		require.Len(t, got, 1)
		assert.Equal(t, "Alimentação", got[0].Name)
	})

	t.Run("excludes non-positive totals", func(t *testing.T) {
		transactions := []model.Transaction{
			tx(model.TipoSaida, 0, "alimentacao", "2025-04-10"),
			tx(model.TipoSaida, 10, "lazer", "2025-04-10"),
		}

		got := CategoryBreakdown(transactions, "abril de 2025", categories)

		require.Len(t, got, 1)
		assert.Equal(t, "Lazer", got[0].Name)
	})

	t.Run("first appearance order", func(t *testing.T) {
		transactions := []model.Transaction{
			tx(model.TipoSaida, 10, "lazer", "2025-04-11"),
			tx(model.TipoSaida, 50, "alimentacao", "2025-04-10"),
			tx(model.TipoSaida, 5, "lazer", "2025-04-12"),
		}

		got := CategoryBreakdown(transactions, "abril de 2025", categories)

		require.Len(t, got, 2)
		assert.Equal(t, "Lazer", got[0].Name)
		assert.Equal(t, "Alimentação", got[1].Name)
	})

	t.Run("unknown category takes fallback color", func(t *testing.T) {
		transactions := []model.Transaction{
			tx(model.TipoSaida, 12, "imprevistos", "2025-04-10"),
		}

		got := CategoryBreakdown(transactions, "abril de 2025", categories)

		require.Len(t, got, 1)
		assert.Equal(t, "imprevistos", got[0].Name)
		assert.Equal(t, category.FallbackColor, got[0].Color)
	})
}

func TestSumByType(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TipoSaida, 50, "alimentacao", "2025-04-10"),
		tx(model.TipoEntrada, 100, "salario", "2025-04-05"),
	}

	assert.InDelta(t, 50, SumByType(transactions, model.TipoSaida), 0.001)
	assert.InDelta(t, 100, SumByType(transactions, model.TipoEntrada), 0.001)
	assert.Zero(t, SumByType(nil, model.TipoSaida))

	t.Run("type match is case insensitive", func(t *testing.T) {
		mixed := []model.Transaction{
			tx("Saida", 10, "lazer", "2025-04-10"),
			tx("SAIDA", 5, "lazer", "2025-04-11"),
		}
		assert.InDelta(t, 15, SumByType(mixed, model.TipoSaida), 0.001)
	})
}
