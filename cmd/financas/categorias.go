package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gabrielsilvacodes/financas-app/internal/cli"
	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

func categoriasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorias",
		Short: "Manage transaction categories",
		Long:  `List the available categories or create new ones. Built-in categories are always present; user categories with the same key take precedence.`,
	}

	cmd.AddCommand(listCategoriasCmd())
	cmd.AddCommand(addCategoriaCmd())

	return cmd
}

func listCategoriasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := initStores()
			if err != nil {
				return err
			}
			defer st.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, tipo := range []model.TransactionType{model.TipoEntrada, model.TipoSaida} {
				merged, err := st.categorias.Merged(ctx, tipo)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t\n", cli.HeaderStyle.Render(string(tipo)))
				for _, c := range merged {
					fmt.Fprintf(w, "%s%s\t%s\n", cli.Swatch(c.Cor), c.Nome, cli.SubtleStyle.Render(c.Chave))
				}
			}
			return w.Flush()
		},
	}
}

func addCategoriaCmd() *cobra.Command {
	var (
		cor      string
		tipoFlag string
	)

	cmd := &cobra.Command{
		Use:   "adicionar <nome>",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tipo, err := parseTipo(tipoFlag)
			if err != nil {
				return err
			}

			st, err := initStores()
			if err != nil {
				return err
			}
			defer st.Close()

			nova, err := st.categorias.Add(ctx, args[0], cor, tipo)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Categoria criada: %s%s (%s)", cli.Swatch(nova.Cor), nova.Nome, nova.Chave)))
			return nil
		},
	}

	cmd.Flags().StringVar(&cor, "cor", "", "display color in hex (defaults to the standard green)")
	cmd.Flags().StringVar(&tipoFlag, "tipo", string(model.TipoSaida), "partition (entrada, saida)")

	return cmd
}
