package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabrielsilvacodes/financas-app/internal/cli"
	"github.com/gabrielsilvacodes/financas-app/internal/common"
	"github.com/gabrielsilvacodes/financas-app/internal/format"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

func adicionarCmd() *cobra.Command {
	var (
		valor     string
		descricao string
		data      string
		tipoFlag  string
		categoria string
	)

	cmd := &cobra.Command{
		Use:   "adicionar",
		Short: "Record a new transaction",
		Long:  `Record an income or expense transaction. Amounts accept localized formats ("12,50", "R$ 12,50") and dates accept DD/MM/YYYY or YYYY-MM-DD.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			tipo, err := parseTipo(tipoFlag)
			if err != nil {
				return err
			}

			params := model.NewTransactionParams{
				Valor:     valor,
				Descricao: descricao,
				Data:      data,
				Tipo:      tipo,
				Categoria: categoria,
			}
			if !model.ValidateFields(params) {
				return common.NewUserError("preencha valor, descrição e data", nil)
			}

			st, err := initStores()
			if err != nil {
				return err
			}
			defer st.Close()

			available, err := st.categorias.Merged(ctx, tipo)
			if err != nil {
				return err
			}
			if categoria == "" {
				// The entry form preselects the first category.
				categoria = available[0].Chave
				params.Categoria = categoria
			} else if !hasCategory(available, categoria) {
				keys := make([]string, 0, len(available))
				for _, c := range available {
					keys = append(keys, c.Chave)
				}
				return common.NewUserError(
					fmt.Sprintf("categoria %q não existe (disponíveis: %s)", categoria, strings.Join(keys, ", ")), nil)
			}

			tx := model.NewTransaction(params)

			transactions, err := st.transacoes.Load(ctx)
			if err != nil {
				return err
			}
			transactions = append(transactions, tx)
			if err := saveWithRetry(ctx, st.transacoes, transactions); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ %s registrada: %s — %s (%s)",
				label(tipo), tx.Titulo, format.FormatAmount(tx.Valor), format.ToDisplayDate(tx.Data))))
			return nil
		},
	}

	cmd.Flags().StringVar(&valor, "valor", "", "transaction amount (required)")
	cmd.Flags().StringVar(&descricao, "descricao", "", "transaction description (required)")
	cmd.Flags().StringVar(&data, "data", "", "transaction date, DD/MM/YYYY or YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&tipoFlag, "tipo", string(model.TipoSaida), "transaction type (entrada, saida)")
	cmd.Flags().StringVar(&categoria, "categoria", "", "category key (defaults to the first available)")

	return cmd
}

func hasCategory(categories []model.Category, chave string) bool {
	for _, c := range categories {
		if strings.EqualFold(c.Chave, chave) {
			return true
		}
	}
	return false
}

func label(tipo model.TransactionType) string {
	if tipo.Is(model.TipoEntrada) {
		return "Receita"
	}
	return "Despesa"
}
