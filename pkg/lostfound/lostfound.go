package lostfound

import (
	"github.com/aleeshaaz/lostfound/internal/inference"
	"github.com/aleeshaaz/lostfound/internal/model"
	"github.com/aleeshaaz/lostfound/internal/search"
)

// Report is a lost-and-found submission.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Report = model.Report

// UrgencyTier is the predicted priority class of a lost-item report.
type UrgencyTier = model.UrgencyTier

// Tiers of the stock dataset, plus the sentinel returned when no model
// is loaded.
const (
	TierHigh     = model.TierHigh
	TierModerate = model.TierModerate
	TierLow      = model.TierLow
	TierUnrated  = model.TierUnrated
)

// Report type discriminators.
const (
	ReportLost  = model.ReportLost
	ReportFound = model.ReportFound
)

// Triage scores report text into urgency tiers and filters found-item
// reports by keyword. Safe for concurrent use.
type Triage struct {
	svc *inference.Service
}

// New creates a Triage, loading the persisted model pair once. A missing
// or corrupt pair is not an error: the instance starts Disabled and
// answers with TierUnrated until a Reload succeeds.
func New(opts ...Option) (*Triage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	svc := inference.NewService(o.logger)
	_ = svc.Load(o.modelDir) // logged by the service; Disabled mode still answers

	return &Triage{svc: svc}, nil
}

// Classify scores a single concatenated text string.
func (t *Triage) Classify(text string) UrgencyTier {
	return t.svc.ClassifyUrgency(text)
}

// ClassifyReport scores a report's free-text fields. This is the intake
// boundary: name, description, and category joined with single spaces.
func (t *Triage) ClassifyReport(itemName, description, category string) UrgencyTier {
	return t.svc.ClassifyUrgency(itemName + " " + description + " " + category)
}

// Ready reports whether a model pair is loaded. When false, Classify
// returns TierUnrated.
func (t *Triage) Ready() bool {
	return t.svc.Mode() == inference.ModeReady
}

// Reload swaps in a newly persisted pair without restarting. The previous
// pair keeps serving if the load fails.
func (t *Triage) Reload(dir string) error {
	return t.svc.Reload(dir)
}

// Search filters found-item candidates by the given form fields. Blank
// fields mean no constraint; keyword matching is disjunctive within the
// description predicate. The result preserves candidate order.
func Search(candidates []Report, nameSubstring, exactCategory, keywords string) []Report {
	return search.Filter(candidates, search.ParseQuery(nameSubstring, exactCategory, keywords))
}
