package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aleeshaaz/lostfound/internal/model"
	"github.com/aleeshaaz/lostfound/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		reportsPath string
		name        string
		category    string
		keywords    string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter found-item reports by name, category, and keywords",
		Long: `Reads a JSON array of reports and prints the ones matching the query.
Only found-item reports are searched; the registry matches found reports
against lost ones, never the reverse. Blank query fields mean no
constraint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(reportsPath)
			if err != nil {
				return fmt.Errorf("read reports: %w", err)
			}
			var reports []model.Report
			if err := json.Unmarshal(data, &reports); err != nil {
				return fmt.Errorf("parse reports: %w", err)
			}

			// The storage layer normally restricts candidates to found
			// reports before search runs; mirror that here.
			candidates := make([]model.Report, 0, len(reports))
			for _, r := range reports {
				if r.Type == model.ReportFound {
					candidates = append(candidates, r)
				}
			}

			results := search.Filter(candidates, search.ParseQuery(name, category, keywords))

			enc := json.NewEncoder(os.Stdout)
			for _, r := range results {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			fmt.Fprintf(os.Stderr, "%d of %d found reports matched\n", len(results), len(candidates))
			return nil
		},
	}

	cmd.Flags().StringVar(&reportsPath, "reports", "", "JSON file holding the candidate reports")
	cmd.Flags().StringVar(&name, "name", "", "item name substring")
	cmd.Flags().StringVar(&category, "category", "", "exact category (case-insensitive)")
	cmd.Flags().StringVar(&keywords, "keywords", "", "free-text description keywords")
	_ = cmd.MarkFlagRequired("reports")
	return cmd
}
