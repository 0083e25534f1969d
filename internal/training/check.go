package training

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aleeshaaz/lostfound/internal/artifact"
	"github.com/aleeshaaz/lostfound/internal/dataset"
	"github.com/aleeshaaz/lostfound/internal/engine/classifier"
)

// Check re-evaluates a persisted pair against the held-out partition of
// the dataset. With the same seed and dataset it rebuilds the exact split
// the pair was trained with, so the numbers match the original run.
func Check(cfg Config, logger *zap.Logger) (classifier.Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	vec, cls, err := artifact.Load(cfg.ArtifactDir)
	if err != nil {
		return classifier.Report{}, fmt.Errorf("check: %w", err)
	}

	examples, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return classifier.Report{}, fmt.Errorf("check: %w", err)
	}

	_, test, err := Split(examples, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return classifier.Report{}, fmt.Errorf("check: %w", err)
	}

	report := classifier.Evaluate(cls, transform(vec, test), labels(test))
	logger.Info("accuracy check",
		zap.String("artifact", cfg.ArtifactDir),
		zap.Float64("accuracy", report.Accuracy),
		zap.Int("samples", report.Total),
	)
	return report, nil
}
