// Package training runs the offline pipeline that fits, evaluates, and
// persists an urgency model from the labeled dataset.
package training

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aleeshaaz/lostfound/internal/artifact"
	"github.com/aleeshaaz/lostfound/internal/dataset"
	"github.com/aleeshaaz/lostfound/internal/engine/classifier"
	"github.com/aleeshaaz/lostfound/internal/engine/vectorizer"
	"github.com/aleeshaaz/lostfound/internal/model"
)

// State names the pipeline stages. Every run walks them in order; any
// failure lands in StateFailed.
type State string

const (
	StateLoadingData State = "loading_data"
	StateSplitting   State = "splitting"
	StateFitting     State = "fitting"
	StateEvaluating  State = "evaluating"
	StatePersisting  State = "persisting"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// Config holds the knobs of one training run.
type Config struct {
	DatasetPath  string
	ArtifactDir  string
	TestFraction float64 // held-out share, (0,1)
	Seed         int64   // split seed; fixed so runs are comparable
}

// Result reports the outcome of a completed run. Evaluation is advisory:
// the pipeline persists the model regardless of measured accuracy.
type Result struct {
	Report      classifier.Report
	ArtifactDir string
	TrainSize   int
	TestSize    int
}

// Pipeline is a single-use offline batch job. Runs are re-executed on
// demand by an operator; no concurrent execution is supported.
type Pipeline struct {
	cfg    Config
	logger *zap.Logger
	state  State
}

// New creates a Pipeline.
func New(cfg Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// State returns the stage the pipeline last entered.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the full pipeline. On error no artifact is written and the
// pipeline ends in StateFailed.
func (p *Pipeline) Run() (Result, error) {
	p.enter(StateLoadingData)
	examples, err := dataset.Load(p.cfg.DatasetPath)
	if err != nil {
		return p.fail(err)
	}
	p.logger.Info("dataset loaded",
		zap.String("path", p.cfg.DatasetPath),
		zap.Int("rows", len(examples)),
	)

	p.enter(StateSplitting)
	train, test, err := Split(examples, p.cfg.TestFraction, p.cfg.Seed)
	if err != nil {
		return p.fail(err)
	}
	p.logger.Info("dataset split",
		zap.Int("train", len(train)),
		zap.Int("test", len(test)),
		zap.Int64("seed", p.cfg.Seed),
	)

	// Fit on the training partition only. Test rows go through Transform
	// below, never through Fit, so they cannot leak into the vocabulary.
	p.enter(StateFitting)
	vec, err := vectorizer.Fit(texts(train))
	if err != nil {
		return p.fail(err)
	}
	cls, err := classifier.Train(transform(vec, train), labels(train))
	if err != nil {
		return p.fail(err)
	}
	p.logger.Info("model fitted",
		zap.Int("features", vec.Dim()),
		zap.Int("classes", len(cls.Classes())),
	)

	p.enter(StateEvaluating)
	report := classifier.Evaluate(cls, transform(vec, test), labels(test))
	p.logger.Info("held-out evaluation",
		zap.Float64("accuracy", report.Accuracy),
		zap.Int("samples", report.Total),
	)

	p.enter(StatePersisting)
	if err := artifact.Save(p.cfg.ArtifactDir, vec, cls); err != nil {
		return p.fail(err)
	}
	p.logger.Info("pair persisted", zap.String("dir", p.cfg.ArtifactDir))

	p.enter(StateDone)
	return Result{
		Report:      report,
		ArtifactDir: p.cfg.ArtifactDir,
		TrainSize:   len(train),
		TestSize:    len(test),
	}, nil
}

func (p *Pipeline) enter(s State) {
	p.state = s
	p.logger.Debug("pipeline state", zap.String("state", string(s)))
}

func (p *Pipeline) fail(err error) (Result, error) {
	p.state = StateFailed
	p.logger.Error("training failed", zap.Error(err))
	return Result{}, fmt.Errorf("training: %w", err)
}

func texts(examples []model.LabeledExample) []string {
	out := make([]string, len(examples))
	for i, ex := range examples {
		out[i] = ex.Text
	}
	return out
}

func labels(examples []model.LabeledExample) []model.UrgencyTier {
	out := make([]model.UrgencyTier, len(examples))
	for i, ex := range examples {
		out[i] = ex.Urgency
	}
	return out
}

func transform(vec *vectorizer.Vectorizer, examples []model.LabeledExample) [][]float64 {
	out := make([][]float64, len(examples))
	for i, ex := range examples {
		out[i] = vec.Transform(ex.Text)
	}
	return out
}
