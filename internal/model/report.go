package model

// ReportType discriminates lost-item reports from found-item reports.
type ReportType string

const (
	ReportLost  ReportType = "lost"
	ReportFound ReportType = "found"
)

// UrgencyTier is the predicted priority class of a lost-item report.
// The label set is derived from the training data; the constants below
// are the labels the stock dataset uses, plus the Unrated sentinel
// returned when no model is loaded.
type UrgencyTier string

const (
	TierHigh     UrgencyTier = "High"
	TierModerate UrgencyTier = "Moderate"
	TierLow      UrgencyTier = "Low"

	// TierUnrated is returned when urgency scoring is unavailable.
	// It never appears in training data.
	TierUnrated UrgencyTier = "Unrated"
)

// Report is a lost-and-found submission. Storage is owned by the caller;
// this package only defines the shape the triage and search logic consume.
type Report struct {
	ID          int         `json:"id"`
	Type        ReportType  `json:"type"`
	ItemName    string      `json:"item_name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        string      `json:"date,omitempty"`
	Location    string      `json:"location,omitempty"`
	ContactInfo string      `json:"contact_info,omitempty"`
	Urgency     UrgencyTier `json:"urgency,omitempty"` // set once at creation, lost reports only
}

// Text concatenates the free-text fields the classifier scores.
func (r Report) Text() string {
	return r.ItemName + " " + r.Description + " " + r.Category
}

// LabeledExample is one row of the training dataset: the concatenated
// free-text fields of a report and its hand-labeled urgency.
type LabeledExample struct {
	Text    string
	Urgency UrgencyTier
}

// SearchQuery holds the optional constraints of one search request.
// Blank or empty fields mean "no constraint".
type SearchQuery struct {
	NameSubstring       string
	ExactCategory       string
	DescriptionKeywords []string
}
