package main

import (
	"strings"

	"github.com/Veraticus/cardfinder/internal/cli"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var (
		output  string
		explain bool
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the catalog",
		Long: `Rank every card against the query and print the matches, best first.

An empty query lists every card in the selected category.`,
		Example: `  cardfinder search budget
  cardfinder search --lang th งบประมาณ
  cardfinder search -c credit loan --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			env, err := loadSearchEnv(cmd)
			if err != nil {
				return err
			}

			q := ranking.Query{
				Text:     strings.Join(args, " "),
				Category: env.cfg.Category,
				Language: env.cfg.Language,
			}
			checkCategory(cmd.ErrOrStderr(), env.catalog, q.Category)

			results := env.ranker.Rank(env.catalog, q)
			if !all {
				results = results.Matched()
			}
			results = results.Limit(env.cfg.Limit)

			var explainer cli.Explainer
			if explain {
				explainer = func(item model.CatalogItem) []ranking.Contribution {
					return env.ranker.Explain(env.catalog, item, q)
				}
			}

			if output == outputJSON {
				return cli.RenderJSON(cmd.OutOrStdout(), cli.NewResultViews(results, q.Language, explainer))
			}

			return cli.RenderTable(cmd.OutOrStdout(), results, cli.TableOptions{
				Query:    q.Text,
				Language: q.Language,
				Explain:  explainer,
			})
		},
	}

	searchFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table, json)")
	cmd.Flags().BoolVar(&explain, "explain", false, "show the score contributions behind each match")
	cmd.Flags().BoolVar(&all, "all", false, "include cards that did not match")

	return cmd
}
