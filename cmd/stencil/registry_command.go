package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRegistryCommand(ctx *commandContext) *cobra.Command {
	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the coach and student registries",
	}

	registryCmd.AddCommand(newRegistryLookupCommand(ctx))
	registryCmd.AddCommand(newRegistryListCommand(ctx))

	return registryCmd
}

func newRegistryLookupCommand(ctx *commandContext) *cobra.Command {
	var students bool

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Resolve a name against the registry",
		Long: `Look up a name the way the resolver would: exact and alias matching first,
then fuzzy matching against the configured similarity threshold.

Examples:
  stencil registry lookup "Coach Jenny"
  stencil registry lookup --students "Arshya Kapoor"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			coaches, studentReg := ctx.loadRegistries(cfg, logger)
			reg := coaches
			kind := "coach"
			if students {
				reg = studentReg
				kind = "student"
			}

			name := strings.TrimSpace(args[0])
			w := cmd.OutOrStdout()

			if entry := reg.LookupExact(name); entry != nil {
				fmt.Fprintf(w, "Exact match: %s (%s registry)\n", entry.CanonicalName, kind)
				return nil
			}
			if entry := reg.LookupFuzzy(name, cfg.Resolver.FuzzyThreshold); entry != nil {
				fmt.Fprintf(w, "Fuzzy match: %s (%s registry, threshold %.2f)\n", entry.CanonicalName, kind, cfg.Resolver.FuzzyThreshold)
				return nil
			}
			fmt.Fprintf(w, "No match in %s registry\n", kind)
			return nil
		},
	}

	cmd.Flags().BoolVar(&students, "students", false, "Search the student registry instead of coaches")
	return cmd
}

func newRegistryListCommand(ctx *commandContext) *cobra.Command {
	var students bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registry entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			coaches, studentReg := ctx.loadRegistries(cfg, logger)
			reg := coaches
			if students {
				reg = studentReg
			}

			rows := make([][]string, 0, reg.Len())
			for _, entry := range reg.Entries() {
				rows = append(rows, []string{
					entry.CanonicalName,
					strings.Join(entry.Aliases, ", "),
					entry.EmailLocalPart,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Canonical", "Aliases", "Email"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&students, "students", false, "List the student registry instead of coaches")
	return cmd
}
