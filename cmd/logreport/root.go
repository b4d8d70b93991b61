package main

import (
	"fmt"
	"os"

	"github.com/nao1215/logreport/internal/config"
	"github.com/nao1215/logreport/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for logreport.
// The root command itself runs the analysis; init and version are subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logreport [flags] <log-file>...",
		Short: "Summarize Django request logs per endpoint and severity",
		Long: `logreport reads Django request log files and counts, for every endpoint,
how many "django.request" lines were logged at each severity level.

Files are analyzed in parallel and the counts are merged into one table.
Lines without the django.request marker are ignored. Malformed request
lines are reported on stderr and skipped.

Examples:
  # Print the handlers report for two files
  logreport --report handlers logs/app1.log logs/app2.log

  # Write a Markdown report to a file
  logreport -r handlers -f markdown -o reports/handlers.md logs/*.log

  # Limit the number of files analyzed at the same time
  logreport -r handlers -j 2 logs/*.log

  # Export run metrics for the node_exporter textfile collector
  logreport -r handlers --metrics-file /var/lib/node_exporter/logreport.prom logs/*.log`,
		Version:       getVersion(),
		Args:          cobra.MinimumNArgs(1),
		RunE:          runReportCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", "text", "Log format on stderr (text or json)")

	cmd.Flags().StringP("report", "r", "",
		fmt.Sprintf("Report type to generate (available: %v)", report.Types()))
	_ = cmd.MarkFlagRequired("report")

	cmd.Flags().StringP("format", "f", string(config.DefaultFormat),
		fmt.Sprintf("Output format (available: %v)", report.Formats()))
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency(),
		"Maximum number of log files analyzed concurrently")
	cmd.Flags().String("metrics-file", "",
		"Write Prometheus metrics for the run to this file")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .logreport in current directory or XDG config dir)")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
