// Package dataset loads the labeled urgency training data.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/aleeshaaz/lostfound/internal/model"
)

// Column order of the training CSV. A header row is required.
var columns = []string{"ItemName", "Description", "Category", "Urgency"}

// Load reads a CSV of labeled examples. Rows with any blank field are
// dropped. Returns a DataError if no usable rows remain.
func Load(path string) ([]model.LabeledExample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, model.Dataf("dataset %s is empty", path)
	}

	if err := checkHeader(rows[0], path); err != nil {
		return nil, err
	}

	examples := make([]model.LabeledExample, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(row[0])
		desc := strings.TrimSpace(row[1])
		category := strings.TrimSpace(row[2])
		urgency := strings.TrimSpace(row[3])
		if name == "" || desc == "" || category == "" || urgency == "" {
			continue
		}
		examples = append(examples, model.LabeledExample{
			Text:    name + " " + desc + " " + category,
			Urgency: model.UrgencyTier(urgency),
		})
	}
	if len(examples) == 0 {
		return nil, model.Dataf("dataset %s has no complete rows", path)
	}
	return examples, nil
}

func checkHeader(header []string, path string) error {
	for i, want := range columns {
		if strings.TrimSpace(header[i]) != want {
			return model.Dataf("dataset %s: column %d is %q, want %q", path, i, header[i], want)
		}
	}
	return nil
}
