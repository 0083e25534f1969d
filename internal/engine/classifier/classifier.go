// Package classifier implements the multinomial naive Bayes model that
// scores TF-IDF vectors into urgency tiers.
package classifier

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/aleeshaaz/lostfound/internal/model"
)

// Laplace smoothing constant for per-class feature likelihoods.
const alpha = 1.0

// Model holds a trained multinomial naive Bayes classifier. Immutable after
// Train; safe for concurrent Predict calls.
type Model struct {
	classes  []model.UrgencyTier // sorted; ties in Predict resolve to the earliest
	logPrior []float64           // parallel to classes
	logLik   [][]float64         // [class][feature] log-likelihood
	dim      int
}

// Train fits a model on feature vectors X and their labels y. Class priors
// are derived from the label distribution. Returns a DataError unless the
// data is non-empty, consistent, and carries at least two distinct labels.
func Train(X [][]float64, y []model.UrgencyTier) (*Model, error) {
	if len(X) == 0 || len(y) == 0 {
		return nil, model.Dataf("cannot train on empty dataset")
	}
	if len(X) != len(y) {
		return nil, model.Dataf("feature/label count mismatch: %d vs %d", len(X), len(y))
	}

	counts := make(map[model.UrgencyTier]int)
	for _, tier := range y {
		counts[tier]++
	}
	if len(counts) < 2 {
		return nil, model.Dataf("need at least 2 distinct labels, got %d", len(counts))
	}

	classes := make([]model.UrgencyTier, 0, len(counts))
	for tier := range counts {
		classes = append(classes, tier)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	dim := len(X[0])
	classIdx := make(map[model.UrgencyTier]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	// Accumulate per-class feature mass.
	featSum := make([][]float64, len(classes))
	totals := make([]float64, len(classes))
	for i := range featSum {
		featSum[i] = make([]float64, dim)
	}
	for row, vec := range X {
		c := classIdx[y[row]]
		for j, x := range vec {
			if j >= dim {
				break
			}
			featSum[c][j] += x
			totals[c] += x
		}
	}

	logPrior := make([]float64, len(classes))
	logLik := make([][]float64, len(classes))
	n := float64(len(y))
	for i, c := range classes {
		logPrior[i] = math.Log(float64(counts[c]) / n)
		logLik[i] = make([]float64, dim)
		denom := totals[i] + alpha*float64(dim)
		for j := 0; j < dim; j++ {
			logLik[i][j] = math.Log((featSum[i][j] + alpha) / denom)
		}
	}

	return &Model{classes: classes, logPrior: logPrior, logLik: logLik, dim: dim}, nil
}

// Predict returns the tier with the highest posterior for the given vector.
// Deterministic: identical vectors always yield identical tiers. The zero
// vector is valid input and falls back to the prior-dominant class.
func (m *Model) Predict(vec []float64) model.UrgencyTier {
	scores := m.logPosterior(vec)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return m.classes[best]
}

// Probabilities returns the normalized posterior distribution over tiers.
func (m *Model) Probabilities(vec []float64) map[model.UrgencyTier]float64 {
	scores := m.logPosterior(vec)

	// Log-sum-exp for numerical stability.
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	var sum float64
	exps := make([]float64, len(scores))
	for i, s := range scores {
		exps[i] = math.Exp(s - max)
		sum += exps[i]
	}

	probs := make(map[model.UrgencyTier]float64, len(m.classes))
	for i, c := range m.classes {
		probs[c] = exps[i] / sum
	}
	return probs
}

// Classes returns the label set seen at training time, in sorted order.
func (m *Model) Classes() []model.UrgencyTier {
	out := make([]model.UrgencyTier, len(m.classes))
	copy(out, m.classes)
	return out
}

// Dim returns the feature dimensionality the model expects.
func (m *Model) Dim() int {
	return m.dim
}

func (m *Model) logPosterior(vec []float64) []float64 {
	scores := make([]float64, len(m.classes))
	for i := range m.classes {
		s := m.logPrior[i]
		lik := m.logLik[i]
		for j, x := range vec {
			if j >= m.dim {
				break
			}
			if x != 0 {
				s += x * lik[j]
			}
		}
		scores[i] = s
	}
	return scores
}

// serialized is the on-disk shape of a trained model.
type serialized struct {
	Classes  []model.UrgencyTier `json:"classes"`
	LogPrior []float64           `json:"log_prior"`
	LogLik   [][]float64         `json:"log_likelihood"`
	Dim      int                 `json:"dim"`
}

// MarshalJSON serializes the trained model.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(serialized{
		Classes:  m.classes,
		LogPrior: m.logPrior,
		LogLik:   m.logLik,
		Dim:      m.dim,
	})
}

// UnmarshalJSON restores a trained model.
func (m *Model) UnmarshalJSON(data []byte) error {
	var s serialized
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s.Classes) != len(s.LogPrior) || len(s.Classes) != len(s.LogLik) {
		return model.Dataf("classifier: inconsistent class count in serialized model")
	}
	m.classes = s.Classes
	m.logPrior = s.LogPrior
	m.logLik = s.LogLik
	m.dim = s.Dim
	return nil
}
