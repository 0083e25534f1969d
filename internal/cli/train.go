package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleeshaaz/lostfound/internal/config"
	"github.com/aleeshaaz/lostfound/internal/logging"
	"github.com/aleeshaaz/lostfound/internal/training"
)

func newTrainCmd() *cobra.Command {
	var (
		datasetPath string
		artifactDir string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit and persist an urgency model from the labeled dataset",
		Long: `Loads the labeled dataset, fits the vectorizer and classifier on an
80/20 seeded split, prints the held-out evaluation, and persists the pair.
Evaluation is advisory; the pair is persisted regardless of accuracy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if datasetPath != "" {
				cfg.Dataset.Path = datasetPath
			}
			if artifactDir != "" {
				cfg.Artifact.Dir = artifactDir
			}

			logger, err := logging.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			p := training.New(training.Config{
				DatasetPath:  cfg.Dataset.Path,
				ArtifactDir:  cfg.Artifact.Dir,
				TestFraction: cfg.Training.TestFraction,
				Seed:         cfg.Training.Seed,
			}, logger)

			result, err := p.Run()
			if err != nil {
				return err
			}

			fmt.Printf("trained on %d rows, evaluated on %d\n\n", result.TrainSize, result.TestSize)
			fmt.Print(result.Report)
			fmt.Printf("\npair saved to %s\n", result.ArtifactDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "labeled dataset CSV (overrides config)")
	cmd.Flags().StringVar(&artifactDir, "out", "", "artifact directory (overrides config)")
	return cmd
}
