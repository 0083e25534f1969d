// Package engine pairs a fitted vectorizer with a trained classifier.
// A pair fitted in the same training run is the only valid combination;
// the artifact layer enforces that when loading from disk.
package engine

import (
	"github.com/aleeshaaz/lostfound/internal/engine/classifier"
	"github.com/aleeshaaz/lostfound/internal/engine/vectorizer"
	"github.com/aleeshaaz/lostfound/internal/model"
)

// Engine is an immutable vectorizer+classifier pair. Safe for concurrent use.
type Engine struct {
	vec *vectorizer.Vectorizer
	cls *classifier.Model
}

// New creates an Engine from a matched pair.
func New(vec *vectorizer.Vectorizer, cls *classifier.Model) *Engine {
	return &Engine{vec: vec, cls: cls}
}

// Classify scores free text into an urgency tier.
func (e *Engine) Classify(text string) model.UrgencyTier {
	return e.cls.Predict(e.vec.Transform(text))
}

// Probabilities returns the posterior distribution over tiers for text.
func (e *Engine) Probabilities(text string) map[model.UrgencyTier]float64 {
	return e.cls.Probabilities(e.vec.Transform(text))
}

// Classes returns the label set the classifier was trained on.
func (e *Engine) Classes() []model.UrgencyTier {
	return e.cls.Classes()
}
