package classifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aleeshaaz/lostfound/internal/model"
)

// ClassMetrics holds per-class evaluation results.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarizes model performance on a held-out set. It is advisory
// output for the operator; the training pipeline never gates persistence
// on it.
type Report struct {
	Accuracy float64
	PerClass map[model.UrgencyTier]ClassMetrics
	Total    int
}

// Evaluate predicts every row of X and compares against y.
func Evaluate(m *Model, X [][]float64, y []model.UrgencyTier) Report {
	tp := make(map[model.UrgencyTier]int)
	fp := make(map[model.UrgencyTier]int)
	fn := make(map[model.UrgencyTier]int)
	support := make(map[model.UrgencyTier]int)

	correct := 0
	for i, vec := range X {
		pred := m.Predict(vec)
		truth := y[i]
		support[truth]++
		if pred == truth {
			correct++
			tp[truth]++
		} else {
			fp[pred]++
			fn[truth]++
		}
	}

	labels := make(map[model.UrgencyTier]struct{})
	for _, c := range m.classes {
		labels[c] = struct{}{}
	}
	for _, t := range y {
		labels[t] = struct{}{}
	}

	perClass := make(map[model.UrgencyTier]ClassMetrics, len(labels))
	for c := range labels {
		var p, r, f1 float64
		if tp[c]+fp[c] > 0 {
			p = float64(tp[c]) / float64(tp[c]+fp[c])
		}
		if tp[c]+fn[c] > 0 {
			r = float64(tp[c]) / float64(tp[c]+fn[c])
		}
		if p+r > 0 {
			f1 = 2 * p * r / (p + r)
		}
		perClass[c] = ClassMetrics{Precision: p, Recall: r, F1: f1, Support: support[c]}
	}

	acc := 0.0
	if len(y) > 0 {
		acc = float64(correct) / float64(len(y))
	}
	return Report{Accuracy: acc, PerClass: perClass, Total: len(y)}
}

// String renders the report as a fixed-width table, one row per class.
func (r Report) String() string {
	classes := make([]model.UrgencyTier, 0, len(r.PerClass))
	for c := range r.PerClass {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	for _, c := range classes {
		m := r.PerClass[c]
		fmt.Fprintf(&b, "%-12s %9.2f %9.2f %9.2f %9d\n", c, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\naccuracy: %.4f (%d samples)\n", r.Accuracy, r.Total)
	return b.String()
}
