// Package inference serves urgency classification to the report intake
// flow. The service never blocks a submission: with no loadable model it
// runs Disabled and answers with the Unrated sentinel.
package inference

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/aleeshaaz/lostfound/internal/artifact"
	"github.com/aleeshaaz/lostfound/internal/engine"
	"github.com/aleeshaaz/lostfound/internal/metrics"
	"github.com/aleeshaaz/lostfound/internal/model"
)

// Mode reports whether a model pair is loaded.
type Mode string

const (
	ModeReady    Mode = "ready"
	ModeDisabled Mode = "disabled"
)

// Service answers ClassifyUrgency calls against an immutable loaded pair.
// The pair sits behind an atomic pointer, so concurrent callers need no
// locking and Reload swaps both halves at once.
type Service struct {
	logger *zap.Logger
	pair   atomic.Pointer[engine.Engine]
}

// NewService creates a Service in Disabled mode. Call Load to arm it.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Load reads the pair from dir. On failure the service logs the cause,
// stays in its previous state (Disabled at startup), and returns the
// ModelLoadError so the operator sees it; callers of ClassifyUrgency are
// unaffected.
func (s *Service) Load(dir string) error {
	vec, cls, err := artifact.Load(dir)
	if err != nil {
		metrics.ModelLoadsTotal.WithLabelValues("error").Inc()
		s.logger.Warn("urgency model unavailable, scoring disabled",
			zap.String("dir", dir),
			zap.Error(err),
		)
		return err
	}
	s.pair.Store(engine.New(vec, cls))
	metrics.ModelLoadsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("urgency model loaded", zap.String("dir", dir))
	return nil
}

// Reload swaps in a newly persisted pair without a restart. The previous
// pair keeps serving if the new one fails to load.
func (s *Service) Reload(dir string) error {
	return s.Load(dir)
}

// ClassifyUrgency scores free text into a tier. It never fails: empty
// input is valid (scored as the zero vector) and Disabled mode returns
// TierUnrated. Safe for concurrent use.
func (s *Service) ClassifyUrgency(text string) model.UrgencyTier {
	eng := s.pair.Load()
	if eng == nil {
		metrics.ClassificationsTotal.WithLabelValues("disabled", string(model.TierUnrated)).Inc()
		return model.TierUnrated
	}
	tier := eng.Classify(text)
	metrics.ClassificationsTotal.WithLabelValues("model", string(tier)).Inc()
	return tier
}

// Mode reports whether the service has a loaded pair.
func (s *Service) Mode() Mode {
	if s.pair.Load() == nil {
		return ModeDisabled
	}
	return ModeReady
}
