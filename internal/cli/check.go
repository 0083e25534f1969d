package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleeshaaz/lostfound/internal/config"
	"github.com/aleeshaaz/lostfound/internal/logging"
	"github.com/aleeshaaz/lostfound/internal/training"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Re-evaluate the persisted pair on the held-out split",
		Long: `Reloads the persisted vectorizer+model pair, rebuilds the seeded
train/test split from the dataset, and prints accuracy plus the per-class
classification report for the held-out partition.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			report, err := training.Check(training.Config{
				DatasetPath:  cfg.Dataset.Path,
				ArtifactDir:  cfg.Artifact.Dir,
				TestFraction: cfg.Training.TestFraction,
				Seed:         cfg.Training.Seed,
			}, logger)
			if err != nil {
				return err
			}

			fmt.Print(report)
			return nil
		},
	}
	return cmd
}
