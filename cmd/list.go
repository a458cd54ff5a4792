package cmd

import (
	"fmt"

	"github.com/signalnine/goldtable/internal/corpus"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [folder...]",
		Short: "List tests with their query and solver counts",
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
				tests, err := corpus.Load(folder, &opts.Corpus)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s:\n", folder)
				for _, t := range tests {
					fmt.Fprintf(out, "  - %s (%d queries, %d solvers)\n", t.Name, len(t.Queries), countSolvers(t))
				}
				return nil
			})
		},
	}
}

func countSolvers(t *corpus.TestSuite) int {
	seen := map[string]struct{}{}
	for _, q := range t.Queries {
		for s := range q.Results {
			seen[s] = struct{}{}
		}
	}
	return len(seen)
}
