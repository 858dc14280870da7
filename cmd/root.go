package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/medalreport/internal/config"
	"github.com/KaramelBytes/medalreport/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "medalreport",
	Short: "Summarize medal totals into a chart and a Markdown report",
	Long: `medalreport reads data/medals_total.csv, computes the mean, median and
standard deviation of the Total column, charts the top 50 countries to
output/total_medals_by_top_50_countries.svg and writes
output/summary_report.md.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		_, err = pipeline.Run(cfg, cmd.OutOrStdout())
		return err
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}
