package main

import (
	"github.com/Veraticus/cardfinder/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Long:  `Display every category of the catalog with the number of cards in it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			env, err := loadSearchEnv(cmd)
			if err != nil {
				return err
			}

			summaries := cli.SummarizeCategories(env.catalog, env.cfg.Language)
			if output == outputJSON {
				return cli.RenderJSON(cmd.OutOrStdout(), summaries)
			}
			return cli.RenderCategories(cmd.OutOrStdout(), summaries)
		},
	}

	cmd.Flags().StringP("lang", "l", "", "display language (en, th, or a tag such as th-TH)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table, json)")

	return cmd
}
