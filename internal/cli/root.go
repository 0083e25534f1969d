// Package cli implements the lostfound command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "lostfound",
	Short: "Lost-and-found urgency triage toolkit",
	Long: `lostfound trains and serves the urgency classifier attached to
lost-item reports, and filters found-item reports by keyword.

Training fits a TF-IDF vocabulary and a naive Bayes model on the labeled
dataset and persists both as a matched pair; classification loads that
pair and scores report text into an urgency tier.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default lostfound.yaml)")

	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lostfound version %s\n", version)
		},
	}
}
