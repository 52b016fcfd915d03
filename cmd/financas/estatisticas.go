package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gabrielsilvacodes/financas-app/internal/cli"
	"github.com/gabrielsilvacodes/financas-app/internal/format"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
	"github.com/gabrielsilvacodes/financas-app/internal/stats"
)

func estatisticasCmd() *cobra.Command {
	var (
		mes     string
		periodo string
	)

	cmd := &cobra.Command{
		Use:   "estatisticas",
		Short: "Show aggregated statistics",
		Long: `Show the monthly expense series. With --mes ("abril de 2025") shows that
month's expense breakdown by category; with --periodo (7dias, 30dias, mes,
ano) shows the breakdown over that window.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := initStores()
			if err != nil {
				return err
			}
			defer st.Close()

			transactions, err := st.transacoes.Load(ctx)
			if err != nil {
				return err
			}
			categories, err := st.categorias.Merged(ctx, model.TipoSaida)
			if err != nil {
				return err
			}

			switch {
			case mes != "":
				fmt.Println(cli.TitleStyle.Render("Distribuição por categoria — " + mes))
				return renderBreakdown(stats.CategoryBreakdown(transactions, mes, categories))
			case periodo != "":
				fmt.Println(cli.TitleStyle.Render("Distribuição por categoria — " + periodo))
				return renderBreakdown(stats.PeriodBreakdown(transactions, stats.Period(periodo), categories))
			default:
				fmt.Println(cli.TitleStyle.Render("Despesas por mês"))
				return renderSeries(stats.MonthlySeries(stats.GroupByMonth(transactions)))
			}
		},
	}

	cmd.Flags().StringVar(&mes, "mes", "", `month bucket, e.g. "abril de 2025"`)
	cmd.Flags().StringVar(&periodo, "periodo", "", "lookback period (7dias, 30dias, mes, ano)")

	return cmd
}

func renderSeries(series stats.Series) error {
	if len(series.Labels) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Sem dados para exibir."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, label := range series.Labels {
		fmt.Fprintf(w, "%s\t%s\n", label, cli.ExpenseStyle.Render(format.FormatAmount(series.Values[i])))
	}
	return w.Flush()
}

func renderBreakdown(slices []stats.Slice) error {
	if len(slices) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Sem despesas no período."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range slices {
		fmt.Fprintf(w, "%s%s\t%s\n", cli.Swatch(s.Color), s.Name, format.FormatAmount(s.Amount))
	}
	return w.Flush()
}
