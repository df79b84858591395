package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stencil/internal/catalog"
	"stencil/internal/ingest"
)

type batchOutput struct {
	RunID     string   `json:"run_id"`
	Processed int      `json:"processed"`
	Flagged   int      `json:"flagged"`
	Failed    int      `json:"failed"`
	Records   []string `json:"identifiers"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch <manifest.json>",
		Short: "Resolve every recording in a manifest and persist the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			coaches, students := ctx.loadRegistryHandles(cfg, logger)

			return ctx.withCatalog(func(store *catalog.Store) error {
				runner, err := ingest.NewRunner(cfg, store, coaches, students, logger)
				if err != nil {
					return err
				}

				result, err := runner.Run(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				if asJSON {
					out := batchOutput{
						RunID:     result.RunID,
						Processed: result.Processed,
						Flagged:   result.Flagged,
						Failed:    result.Failed,
					}
					for _, rec := range result.Records {
						out.Records = append(out.Records, rec.Identifier)
					}
					return writeJSON(cmd, out)
				}

				w := cmd.OutOrStdout()
				colorize := shouldColorize(w)
				rows := make([][]string, 0, len(result.Records))
				for _, rec := range result.Records {
					rows = append(rows, []string{
						fmt.Sprintf("%d", rec.ID),
						rec.Identifier,
						fmt.Sprintf("%d", rec.Overall),
						renderReviewFlag(rec.NeedsReview, colorize),
					})
				}
				fmt.Fprintln(w, renderTable(
					[]string{"ID", "Identifier", "Confidence", "Status"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
				))
				fmt.Fprintf(w, "Run %s: %d processed, %d flagged for review, %d failed\n",
					result.RunID, result.Processed, result.Flagged, result.Failed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
