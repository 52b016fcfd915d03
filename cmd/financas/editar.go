package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabrielsilvacodes/financas-app/internal/cli"
	"github.com/gabrielsilvacodes/financas-app/internal/common"
	"github.com/gabrielsilvacodes/financas-app/internal/format"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

func editarCmd() *cobra.Command {
	var (
		valor     string
		descricao string
		data      string
		tipoFlag  string
		categoria string
	)

	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Edit an existing transaction",
		Long:  `Replace fields of an existing transaction. Only the given flags change; the id never does.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			st, err := initStores()
			if err != nil {
				return err
			}
			defer st.Close()

			existing, err := st.transacoes.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if existing == nil {
				return common.NewUserError(fmt.Sprintf("transação %s não encontrada", id), nil)
			}

			params := model.NewTransactionParams{
				Valor:       existing.Valor,
				Descricao:   existing.Titulo,
				Data:        existing.Data,
				Tipo:        existing.Tipo,
				Categoria:   existing.Categoria.Chave,
				IDExistente: existing.ID,
			}
			if valor != "" {
				params.Valor = valor
			}
			if descricao != "" {
				params.Descricao = descricao
			}
			if data != "" {
				params.Data = data
			}
			if tipoFlag != "" {
				tipo, err := parseTipo(tipoFlag)
				if err != nil {
					return err
				}
				params.Tipo = tipo
			}
			if categoria != "" {
				params.Categoria = categoria
			}

			updated, err := st.transacoes.Update(ctx, model.NewTransaction(params))
			if err != nil {
				return err
			}
			if !updated {
				fmt.Println(cli.WarningStyle.Render("Nenhuma transação foi alterada."))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Transação atualizada: %s — %s", params.Descricao, format.FormatAmount(params.Valor))))
			return nil
		},
	}

	cmd.Flags().StringVar(&valor, "valor", "", "new amount")
	cmd.Flags().StringVar(&descricao, "descricao", "", "new description")
	cmd.Flags().StringVar(&data, "data", "", "new date, DD/MM/YYYY or YYYY-MM-DD")
	cmd.Flags().StringVar(&tipoFlag, "tipo", "", "new type (entrada, saida)")
	cmd.Flags().StringVar(&categoria, "categoria", "", "new category key")

	return cmd
}
