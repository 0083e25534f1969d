package training

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/aleeshaaz/lostfound/internal/model"
)

func exampleSet(n int) []model.LabeledExample {
	out := make([]model.LabeledExample, n)
	for i := range out {
		tier := model.TierLow
		if i%2 == 0 {
			tier = model.TierHigh
		}
		out[i] = model.LabeledExample{Text: fmt.Sprintf("item %d", i), Urgency: tier}
	}
	return out
}

func TestSplitDeterministic(t *testing.T) {
	examples := exampleSet(20)

	train1, test1, err := Split(examples, 0.2, 42)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	train2, test2, err := Split(examples, 0.2, 42)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if !reflect.DeepEqual(train1, train2) || !reflect.DeepEqual(test1, test2) {
		t.Error("same seed produced different partitions")
	}
}

func TestSplitSeedChangesPartition(t *testing.T) {
	examples := exampleSet(20)

	_, test42, err := Split(examples, 0.2, 42)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	_, test7, err := Split(examples, 0.2, 7)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if reflect.DeepEqual(test42, test7) {
		t.Error("different seeds produced identical test partitions")
	}
}

func TestSplitDisjointAndComplete(t *testing.T) {
	examples := exampleSet(25)
	train, test, err := Split(examples, 0.2, 1)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(train)+len(test) != len(examples) {
		t.Fatalf("partition sizes %d+%d, want %d", len(train), len(test), len(examples))
	}

	seen := make(map[string]struct{})
	for _, ex := range train {
		seen[ex.Text] = struct{}{}
	}
	for _, ex := range test {
		if _, ok := seen[ex.Text]; ok {
			t.Fatalf("example %q in both partitions", ex.Text)
		}
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		fraction float64
	}{
		{"too few rows", 3, 0.2},
		{"fraction zero", 20, 0},
		{"fraction one", 20, 1},
		{"single row", 1, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Split(exampleSet(tc.n), tc.fraction, 42)
			var de *model.DataError
			if !errors.As(err, &de) {
				t.Fatalf("expected DataError, got %v", err)
			}
		})
	}
}
