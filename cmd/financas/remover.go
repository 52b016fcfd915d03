package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabrielsilvacodes/financas-app/internal/cli"
)

func removerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remover <id>",
		Short: "Remove a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			st, err := initStores()
			if err != nil {
				return err
			}
			defer st.Close()

			removed, err := st.transacoes.Remove(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to remove transaction: %w", err)
			}

			if !removed {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Nenhuma transação com id %s.", id)))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("✓ Transação removida."))
			return nil
		},
	}
}
