package lostfound

import "go.uber.org/zap"

type options struct {
	modelDir string
	logger   *zap.Logger
}

// Option configures a Triage instance.
type Option func(*options)

// WithModelDir sets the directory holding the persisted vectorizer+model
// pair. Default: "models/urgency".
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.modelDir = dir
	}
}

// WithLogger sets the logger used for load diagnostics. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		modelDir: "models/urgency",
		logger:   zap.NewNop(),
	}
}
