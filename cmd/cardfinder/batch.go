package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/Veraticus/cardfinder/internal/cli"
	"github.com/Veraticus/cardfinder/internal/common"
	"github.com/Veraticus/cardfinder/internal/config"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func batchCmd() *cobra.Command {
	var (
		output      string
		concurrency int
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Rank many queries at once",
		Long: `Read one query per line (blank lines and # comments are skipped), rank every
query against the catalog, and print the best match for each in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if concurrency < 1 {
				return common.NewUserError("--concurrency must be at least 1", common.ErrInvalidConfig)
			}

			env, err := loadSearchEnv(cmd)
			if err != nil {
				return err
			}
			checkCategory(cmd.ErrOrStderr(), env.catalog, env.cfg.Category)

			in, closeInput, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeInput()

			queries, err := cli.NewQueryReader(in).ReadAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read queries: %w", err)
			}

			var done atomic.Int64
			handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx, cancel := handler.HandleInterrupts(cmd.Context(), func() (int, int) {
				return int(done.Load()), len(queries)
			})
			defer cancel()

			var bar io.Writer = io.Discard
			if !quiet {
				bar = cmd.ErrOrStderr()
			}
			progress := cli.NewProgressBar(bar, len(queries), "Ranking queries...")

			cache := ranking.NewCache(env.ranker, env.catalog, 0, len(queries))
			results := make([]cli.BatchResult, len(queries))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(concurrency)

			for i, q := range queries {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}

					ranked := cache.Rank(ranking.Query{
						Text:     q.Text,
						Category: env.cfg.Category,
						Language: env.cfg.Language,
					})
					results[i] = cli.NewBatchResult(q, ranked, env.cfg.Language)

					done.Add(1)
					if err := progress.Add(1); err != nil {
						slog.Warn("Failed to update progress bar", "error", err)
					}
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				if handler.WasInterrupted() {
					return common.NewUserError("Batch search interrupted", err)
				}
				return fmt.Errorf("batch search failed: %w", err)
			}

			slog.Debug("Batch complete", "queries", len(queries))

			if output == outputJSON {
				return cli.RenderJSON(cmd.OutOrStdout(), results)
			}
			return cli.RenderBatch(cmd.OutOrStdout(), results)
		},
	}

	searchFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table, json)")
	cmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of queries ranked in parallel")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	return cmd
}

// openInput opens path for reading, or standard input for "-".
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(config.ExpandPath(path))
	if err != nil {
		return nil, nil, common.NewUserError(fmt.Sprintf("Could not open %s", path), err)
	}
	return f, func() { _ = f.Close() }, nil
}
