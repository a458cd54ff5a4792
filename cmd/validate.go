package cmd

import (
	"fmt"

	"github.com/signalnine/goldtable/internal/report"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [folder...]",
		Short: "Check that folders load and score without printing tables",
		Long:  "Load every test of each folder, build the solver schema and score the rows. Reports unreadable result files, a missing reference solver and folders with no queries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			opts, err := reportOptions(cfg, log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return eachFolder(log, resolveFolders(cfg, args), func(folder string) error {
				rep, err := report.Build(folder, opts)
				if err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", folder, err)
					return err
				}
				fmt.Fprintf(out, "OK   %s (%d tests, %d queries, %d solvers)\n",
					folder, len(rep.Tests), rep.Stats.TotalQueries, len(rep.Schema)-1)
				return nil
			})
		},
	}
}
