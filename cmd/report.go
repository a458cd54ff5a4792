package cmd

import (
	"github.com/signalnine/goldtable/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagFormat  string
	flagColor   string
	flagWorkers int
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [folder...]",
		Short: "Print the comparison table for each folder",
		RunE:  runReport,
	}
	addReportFlags(cmd)
	return cmd
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "output format (table, markdown, json, tex)")
	cmd.Flags().StringVar(&flagColor, "color", "", "highlight matches (auto, always, never)")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "tests loaded concurrently")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	opts, err := reportOptions(cfg, log)
	if err != nil {
		return err
	}
	return eachFolder(log, resolveFolders(cfg, args), func(folder string) error {
		return report.Generate(folder, opts, cmd.OutOrStdout())
	})
}
