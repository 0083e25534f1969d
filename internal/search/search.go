// Package search filters found-item reports against a keyword query.
// Candidates arrive already restricted to found reports by the storage
// layer; lost reports never appear in results.
package search

import (
	"strings"

	"github.com/aleeshaaz/lostfound/internal/engine/textproc"
	"github.com/aleeshaaz/lostfound/internal/model"
)

// ParseQuery builds a SearchQuery from raw form fields. Keywords are
// normalized and stop-word filtered; blank fields become no-ops.
func ParseQuery(name, category, keywords string) model.SearchQuery {
	return model.SearchQuery{
		NameSubstring:       strings.TrimSpace(name),
		ExactCategory:       strings.TrimSpace(category),
		DescriptionKeywords: textproc.Keywords(keywords),
	}
}

// Filter returns the order-preserving subset of candidates matching every
// set constraint. An empty query matches everything; Filter never errors.
func Filter(candidates []model.Report, q model.SearchQuery) []model.Report {
	out := make([]model.Report, 0, len(candidates))
	for _, r := range candidates {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// matches applies the query as a conjunction of its set predicates.
func matches(r model.Report, q model.SearchQuery) bool {
	if q.NameSubstring != "" &&
		!strings.Contains(strings.ToLower(r.ItemName), strings.ToLower(q.NameSubstring)) {
		return false
	}
	if q.ExactCategory != "" && !strings.EqualFold(r.Category, q.ExactCategory) {
		return false
	}
	if len(q.DescriptionKeywords) > 0 && !anyKeyword(r.Description, q.DescriptionKeywords) {
		return false
	}
	return true
}

// anyKeyword is the one disjunctive predicate: a single keyword hit in the
// description is enough.
func anyKeyword(description string, keywords []string) bool {
	desc := strings.ToLower(description)
	for _, kw := range keywords {
		if strings.Contains(desc, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
