// Package vectorizer converts free text into TF-IDF weighted feature
// vectors over a vocabulary fitted once from a training corpus.
package vectorizer

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/aleeshaaz/lostfound/internal/engine/textproc"
	"github.com/aleeshaaz/lostfound/internal/model"
)

// Vectorizer holds a fitted vocabulary: token → feature index plus a
// smoothed inverse-document-frequency weight per token. Frozen after Fit;
// safe for concurrent Transform calls.
type Vectorizer struct {
	terms []string       // sorted; index in this slice is the feature index
	index map[string]int // token → feature index
	idf   []float64      // parallel to terms
}

// Fit builds a vocabulary from the corpus. Feature indices are assigned in
// sorted token order so the same corpus always yields the same
// dimensionality and layout. Returns a DataError for an empty corpus or a
// corpus containing no tokens.
func Fit(corpus []string) (*Vectorizer, error) {
	if len(corpus) == 0 {
		return nil, model.Dataf("cannot fit vectorizer on empty corpus")
	}

	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range textproc.Tokens(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, model.Dataf("corpus contains no tokens")
	}

	terms := make([]string, 0, len(df))
	for tok := range df {
		terms = append(terms, tok)
	}
	sort.Strings(terms)

	n := float64(len(corpus))
	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, tok := range terms {
		index[tok] = i
		// Smoothed IDF: every term behaves as if seen in one extra document,
		// so no weight is ever zero or negative.
		idf[i] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	return &Vectorizer{terms: terms, index: index, idf: idf}, nil
}

// Transform maps text to an L2-normalized TF-IDF vector of the fitted
// dimensionality. Out-of-vocabulary tokens contribute nothing; text with
// no in-vocabulary tokens yields the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range textproc.Tokens(text) {
		if i, ok := v.index[tok]; ok {
			vec[i] += v.idf[i]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Dim returns the number of features in the fitted vocabulary.
func (v *Vectorizer) Dim() int {
	return len(v.terms)
}

// serialized is the on-disk shape of a fitted vectorizer.
type serialized struct {
	Terms []string  `json:"terms"`
	IDF   []float64 `json:"idf"`
}

// MarshalJSON serializes the fitted vocabulary.
func (v *Vectorizer) MarshalJSON() ([]byte, error) {
	return json.Marshal(serialized{Terms: v.terms, IDF: v.idf})
}

// UnmarshalJSON restores a fitted vocabulary.
func (v *Vectorizer) UnmarshalJSON(data []byte) error {
	var s serialized
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s.Terms) != len(s.IDF) {
		return model.Dataf("vectorizer: %d terms but %d idf weights", len(s.Terms), len(s.IDF))
	}
	index := make(map[string]int, len(s.Terms))
	for i, tok := range s.Terms {
		index[tok] = i
	}
	v.terms = s.Terms
	v.index = index
	v.idf = s.IDF
	return nil
}
