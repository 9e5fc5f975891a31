package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/cardfinder/internal/config"
	"github.com/Veraticus/cardfinder/internal/history"
	"github.com/Veraticus/cardfinder/internal/tui"
	"github.com/Veraticus/cardfinder/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func browseCmd() *cobra.Command {
	var (
		theme  string
		record bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search interactively",
		Long: `Open the interactive card browser. Results update as you type, once typing
pauses for the debounce period.

Keys: Tab/Shift+Tab change category, Ctrl+L switches English/Thai, Enter saves
the search to the recent list, Ctrl+R recalls recent searches, Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f := cmd.Flags().Lookup("debounce"); f != nil {
				if err := viper.BindPFlag(config.KeyDebounce, f); err != nil {
					return fmt.Errorf("failed to bind --debounce: %w", err)
				}
			}

			env, err := loadSearchEnv(cmd)
			if err != nil {
				return err
			}
			checkCategory(cmd.ErrOrStderr(), env.catalog, env.cfg.Category)

			var recorder *tui.Recorder
			if record {
				recorder = tui.NewRecorder(true, "")
				slog.Info("Recording TUI session", "dir", recorder.Dir())
			}

			searches, err := tui.Run(cmd.Context(),
				tui.WithCatalog(env.catalog),
				tui.WithRanker(env.ranker),
				tui.WithHistory(history.New(history.DefaultSize)),
				tui.WithLanguage(env.cfg.Language),
				tui.WithCategory(env.cfg.Category),
				tui.WithDebounce(env.cfg.Debounce),
				tui.WithLimit(env.cfg.Limit),
				tui.WithTheme(themes.GetTheme(theme)),
				tui.WithRecorder(recorder),
			)
			if err != nil {
				return err
			}

			slog.Debug("Browse session ended", "saved_searches", searches)
			return nil
		},
	}

	searchFlags(cmd)
	cmd.Flags().Duration("debounce", config.DefaultDebounce, "pause after typing before results update")
	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().BoolVar(&record, "record", false, "record every frame to a temp directory for debugging")

	return cmd
}
