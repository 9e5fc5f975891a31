package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/cardfinder/internal/catalog"
	"github.com/Veraticus/cardfinder/internal/cli"
	"github.com/Veraticus/cardfinder/internal/common"
	"github.com/Veraticus/cardfinder/internal/config"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// searchFlags registers the flags shared by every command that ranks.
func searchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", "category to search (all, or a category id)")
	cmd.Flags().StringP("lang", "l", "", "display language (en, th, or a tag such as th-TH)")
	cmd.Flags().IntP("limit", "n", 0, "maximum number of results (0 for no limit)")
}

// bindSearchFlags binds the shared flags of the running command. Commands
// share viper keys, so binding happens at run time rather than construction.
func bindSearchFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		"category": config.KeyCategory,
		"lang":     config.KeyLanguage,
		"limit":    config.KeyLimit,
	}
	for flag, key := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return nil
}

// searchEnv is everything a ranking command needs.
type searchEnv struct {
	cfg     *config.SearchConfig
	catalog model.Catalog
	ranker  *ranking.Ranker
}

// loadSearchEnv reads the configuration and loads the catalog.
func loadSearchEnv(cmd *cobra.Command) (*searchEnv, error) {
	if err := bindSearchFlags(cmd); err != nil {
		return nil, err
	}

	cfg, err := config.LoadSearchConfig(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("Invalid configuration", err)
	}

	c, err := catalog.Resolve(cfg.CatalogPath)
	if err != nil {
		return nil, common.NewUserError("Could not load the catalog", err)
	}

	slog.Debug("Catalog loaded",
		"path", cfg.CatalogPath,
		"categories", len(c.Categories),
		"items", len(c.Items))

	return &searchEnv{
		cfg:     cfg,
		catalog: c,
		ranker:  ranking.New(ranking.WithWeights(cfg.Weights), ranking.WithLogger(slog.Default())),
	}, nil
}

// checkCategory warns about a category selector the catalog does not know.
// Ranking still proceeds and yields no results for it.
func checkCategory(w io.Writer, c model.Catalog, id model.CategoryID) bool {
	if id.IsAll() {
		return true
	}
	if _, ok := c.CategoryByID(id); ok {
		return true
	}

	msg := fmt.Sprintf("Unknown category %q.", id)
	if suggestion, ok := catalog.SuggestCategory(id.String(), c.Categories); ok {
		msg += fmt.Sprintf(" Did you mean %q?", suggestion)
	}
	fmt.Fprintln(w, cli.FormatWarning(msg))
	return false
}

func validateOutput(output string) error {
	switch output {
	case outputTable, outputJSON:
		return nil
	default:
		return common.NewUserError(
			fmt.Sprintf("Unknown output format %q (use table or json)", output),
			common.ErrInvalidConfig)
	}
}
