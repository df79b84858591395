package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stencil/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the resolved-recording catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogShowCommand(ctx))
	catalogCmd.AddCommand(newCatalogReviewCommand(ctx))
	catalogCmd.AddCommand(newCatalogClearCommand(ctx))
	catalogCmd.AddCommand(newCatalogHealthCommand(ctx))

	return catalogCmd
}

func catalogRows(records []*catalog.Record, colorize bool) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.Identifier,
			rec.SessionType,
			fmt.Sprintf("%d", rec.Overall),
			renderReviewFlag(rec.NeedsReview, colorize),
		})
	}
	return rows
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var reviewOnly bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(store *catalog.Store) error {
				var (
					records []*catalog.Record
					err     error
				)
				if reviewOnly {
					records, err = store.ListNeedsReview(cmd.Context())
				} else {
					records, err = store.List(cmd.Context())
				}
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd, records)
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty")
					return nil
				}
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, renderTable(
					[]string{"ID", "Identifier", "Type", "Confidence", "Status"},
					catalogRows(records, shouldColorize(w)),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reviewOnly, "review", false, "Show only records flagged for review")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newCatalogShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a catalog record in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			return ctx.withCatalog(func(store *catalog.Store) error {
				rec, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if rec == nil {
					return fmt.Errorf("record %d not found", id)
				}
				if asJSON {
					return writeJSON(cmd, rec)
				}

				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Identifier:   %s\n", rec.Identifier)
				fmt.Fprintf(w, "Type:         %s\n", rec.SessionType)
				fmt.Fprintf(w, "Coach:        %s (confidence %d, source %s)\n", rec.Coach, rec.CoachConfidence, rec.CoachSource)
				fmt.Fprintf(w, "Student:      %s (confidence %d, source %s)\n", rec.Student, rec.StudentConfidence, rec.StudentSource)
				fmt.Fprintf(w, "Week:         %s (confidence %d, source %s)\n", rec.WeekToken, rec.WeekConfidence, rec.WeekSource)
				fmt.Fprintf(w, "Overall:      %d\n", rec.Overall)
				fmt.Fprintf(w, "Topic:        %s\n", rec.Topic)
				fmt.Fprintf(w, "Session date: %s\n", rec.SessionDate)
				if trail := rec.MethodTrail(); len(trail) > 0 {
					fmt.Fprintf(w, "Stages tried: %s\n", strings.Join(trail, ", "))
				}
				fmt.Fprintf(w, "Needs review: %s\n", yesNo(rec.NeedsReview))
				if rec.ReviewReason != "" {
					fmt.Fprintf(w, "Reason:       %s\n", rec.ReviewReason)
				}
				fmt.Fprintf(w, "Run:          %s\n", rec.RunID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newCatalogReviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reviewed <id>",
		Short: "Clear the review flag on a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			return ctx.withCatalog(func(store *catalog.Store) error {
				rec, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if rec == nil {
					return fmt.Errorf("record %d not found", id)
				}
				if err := store.MarkReviewed(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Record %d marked as reviewed\n", id)
				return nil
			})
		},
	}
}

func newCatalogClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all catalog records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(store *catalog.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d records\n", removed)
				return nil
			})
		},
	}
}

func newCatalogHealthCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show aggregate catalog counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(store *catalog.Store) error {
				summary, err := store.Health(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, summary)
				}
				rows := [][]string{
					{"Total", fmt.Sprintf("%d", summary.Total)},
					{"Needs review", fmt.Sprintf("%d", summary.NeedsReview)},
					{"Unknown coach", fmt.Sprintf("%d", summary.UnknownCoach)},
					{"Unknown student", fmt.Sprintf("%d", summary.UnknownStudent)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Metric", "Count"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
