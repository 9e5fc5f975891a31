package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/cardfinder/internal/catalog"
	"github.com/Veraticus/cardfinder/internal/cli"
	"github.com/Veraticus/cardfinder/internal/common"
	"github.com/Veraticus/cardfinder/internal/config"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Check a catalog file",
		Long: `Load a catalog and report every problem found: unknown fields, duplicate ids,
items without a name, and items tagged with a category that does not exist.

Without an argument the configured catalog (or the built-in one) is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString(config.KeyCatalogPath)
			if len(args) == 1 {
				path = args[0]
			}

			label := path
			if strings.TrimSpace(label) == "" {
				label = "built-in catalog"
			}

			c, err := catalog.Resolve(path)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(fmt.Sprintf("%s is invalid:", label)))
				for _, problem := range problems(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "  • "+problem)
				}
				return fmt.Errorf("%s: %w", label, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(summary(label, c)))
			return nil
		},
	}
}

func summary(label string, c model.Catalog) string {
	return fmt.Sprintf("%s is valid: %d categories, %d cards", label, len(c.Categories), len(c.Items))
}

// problems flattens joined validation errors into one line each.
func problems(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			if e == common.ErrInvalidCatalog {
				continue
			}
			out = append(out, problems(e)...)
		}
		if len(out) > 0 {
			return out
		}
	}
	return strings.Split(err.Error(), "\n")
}
