package training

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleeshaaz/lostfound/internal/artifact"
	"github.com/aleeshaaz/lostfound/internal/model"
)

// syntheticCSV holds 20 rows across 3 roughly balanced classes with
// distinct vocabularies, so a working model must comfortably beat the
// 1/3 random-guess baseline on the held-out split.
const syntheticCSV = `ItemName,Description,Category,Urgency
Passport,passport with visa stamps urgent travel,Documents,High
Passport,lost passport urgent visa documents,Documents,High
Wallet,wallet with id cards urgent documents,Documents,High
ID Card,id card urgent passport office documents,Documents,High
Visa Papers,visa papers urgent travel documents,Documents,High
Passport,travel passport urgent visa,Documents,High
Wallet,wallet urgent id documents inside,Documents,High
Laptop,laptop backpack with charger inside,Electronics,Moderate
Backpack,backpack holding laptop and charger,Electronics,Moderate
Charger,laptop charger in grey backpack,Electronics,Moderate
Laptop,silver laptop left with backpack,Electronics,Moderate
Backpack,green backpack with laptop charger,Electronics,Moderate
Charger,white charger for laptop backpack,Electronics,Moderate
Laptop,laptop and charger in backpack,Electronics,Moderate
Pen,cheap blue pen plastic,Stationery,Low
Pencil,cheap pencil with eraser,Stationery,Low
Eraser,small cheap eraser pencil,Stationery,Low
Pen,plastic pen cheap ballpoint,Stationery,Low
Pencil,wooden pencil cheap eraser,Stationery,Low
Eraser,pink eraser cheap plastic,Stationery,Low
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urgency_dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func testConfig(t *testing.T, csv string) Config {
	t.Helper()
	return Config{
		DatasetPath:  writeDataset(t, csv),
		ArtifactDir:  filepath.Join(t.TempDir(), "pair"),
		TestFraction: 0.2,
		Seed:         42,
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t, syntheticCSV)
	p := New(cfg, nil)

	result, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.State() != StateDone {
		t.Errorf("state = %v, want %v", p.State(), StateDone)
	}
	if result.TrainSize+result.TestSize != 20 {
		t.Errorf("partition sizes %d+%d, want 20 total", result.TrainSize, result.TestSize)
	}
	if result.TestSize != 4 {
		t.Errorf("test size = %d, want 4 (20%% of 20)", result.TestSize)
	}

	// Regression guard: held-out accuracy must beat random guessing over
	// 3 classes. Not a strict quality threshold.
	if result.Report.Accuracy <= 1.0/3.0 {
		t.Errorf("held-out accuracy %v does not beat the 1/3 baseline", result.Report.Accuracy)
	}

	// The persisted pair must answer like the fitted one.
	vec, cls, err := artifact.Load(cfg.ArtifactDir)
	if err != nil {
		t.Fatalf("Load persisted pair: %v", err)
	}
	got := cls.Predict(vec.Transform("passport with visa stamps urgent travel Documents"))
	if got != model.TierHigh {
		t.Errorf("reloaded pair predicts %v for a training-set High row", got)
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "empty dataset",
			csv:  "ItemName,Description,Category,Urgency\n",
		},
		{
			name: "single class",
			csv: `ItemName,Description,Category,Urgency
Pen,cheap pen,Stationery,Low
Pencil,cheap pencil,Stationery,Low
Eraser,cheap eraser,Stationery,Low
Ruler,plastic ruler,Stationery,Low
Sharpener,metal sharpener,Stationery,Low
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t, tc.csv)
			p := New(cfg, nil)

			_, err := p.Run()
			var de *model.DataError
			if !errors.As(err, &de) {
				t.Fatalf("expected DataError, got %v", err)
			}
			if p.State() != StateFailed {
				t.Errorf("state = %v, want %v", p.State(), StateFailed)
			}
			// No partial artifact on failure.
			if _, statErr := os.Stat(cfg.ArtifactDir); !os.IsNotExist(statErr) {
				t.Error("artifact written despite failed run")
			}
		})
	}
}

func TestCheckMatchesTrainingRun(t *testing.T) {
	cfg := testConfig(t, syntheticCSV)

	result, err := New(cfg, nil).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	report, err := Check(cfg, nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Accuracy != result.Report.Accuracy {
		t.Errorf("Check accuracy %v differs from training run %v", report.Accuracy, result.Report.Accuracy)
	}
	if report.Total != result.TestSize {
		t.Errorf("Check evaluated %d samples, training run held out %d", report.Total, result.TestSize)
	}
}
