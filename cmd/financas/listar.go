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

func listarCmd() *cobra.Command {
	var (
		tipoFlag string
		periodo  string
	)

	cmd := &cobra.Command{
		Use:   "listar",
		Short: "List recorded transactions",
		Long:  `Display recorded transactions with their dates, categories and amounts, optionally filtered by type or period (7dias, 30dias, mes, ano).`,
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

			if periodo != "" {
				transactions = stats.FilterByPeriod(transactions, stats.Period(periodo))
			}
			if tipoFlag != "" {
				tipo, err := parseTipo(tipoFlag)
				if err != nil {
					return err
				}
				kept := transactions[:0]
				for _, tx := range transactions {
					if tx.Tipo.Is(tipo) {
						kept = append(kept, tx)
					}
				}
				transactions = kept
			}

			if len(transactions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nenhuma transação encontrada."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Data"),
				cli.HeaderStyle.Render("Descrição"),
				cli.HeaderStyle.Render("Categoria"),
				cli.HeaderStyle.Render("Valor"),
				cli.HeaderStyle.Render("ID"))

			for _, tx := range transactions {
				valor := format.FormatAmount(tx.Valor)
				if tx.Tipo.Is(model.TipoSaida) {
					valor = cli.ExpenseStyle.Render("-" + valor)
				} else {
					valor = cli.IncomeStyle.Render("+" + valor)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					format.ToDisplayDate(tx.Data),
					tx.Titulo,
					tx.Categoria.Chave,
					valor,
					cli.SubtleStyle.Render(tx.ID))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			entradas := stats.SumByType(transactions, model.TipoEntrada)
			saidas := stats.SumByType(transactions, model.TipoSaida)
			saldo := format.FormatAmount(entradas - saidas)
			if saidas > entradas {
				saldo = cli.ExpenseStyle.Render("-" + format.FormatAmount(saidas-entradas))
			}
			fmt.Printf("\n%s %s   %s %s   %s %s\n",
				cli.HeaderStyle.Render("Receitas:"), cli.IncomeStyle.Render(format.FormatAmount(entradas)),
				cli.HeaderStyle.Render("Despesas:"), cli.ExpenseStyle.Render(format.FormatAmount(saidas)),
				cli.HeaderStyle.Render("Saldo:"), saldo)
			return nil
		},
	}

	cmd.Flags().StringVar(&tipoFlag, "tipo", "", "filter by type (entrada, saida)")
	cmd.Flags().StringVar(&periodo, "periodo", "", "filter by period (7dias, 30dias, mes, ano)")

	return cmd
}
