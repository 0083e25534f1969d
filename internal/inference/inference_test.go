package inference

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aleeshaaz/lostfound/internal/artifact"
	"github.com/aleeshaaz/lostfound/internal/engine/classifier"
	"github.com/aleeshaaz/lostfound/internal/engine/vectorizer"
	"github.com/aleeshaaz/lostfound/internal/model"
)

// savePair trains a tiny pair and persists it, returning the directory.
func savePair(t *testing.T) string {
	t.Helper()

	texts := []string{
		"passport visa urgent documents",
		"passport travel urgent",
		"pen cheap plastic",
		"pencil cheap eraser",
	}
	labels := []model.UrgencyTier{
		model.TierHigh, model.TierHigh,
		model.TierLow, model.TierLow,
	}

	vec, err := vectorizer.Fit(texts)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	X := make([][]float64, len(texts))
	for i, text := range texts {
		X[i] = vec.Transform(text)
	}
	cls, err := classifier.Train(X, labels)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "pair")
	if err := artifact.Save(dir, vec, cls); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return dir
}

func TestDisabledModeAnswersUnrated(t *testing.T) {
	svc := NewService(nil)
	if svc.Mode() != ModeDisabled {
		t.Fatalf("new service mode = %v, want disabled", svc.Mode())
	}

	err := svc.Load(filepath.Join(t.TempDir(), "missing"))
	var mle *model.ModelLoadError
	if !errors.As(err, &mle) {
		t.Fatalf("expected ModelLoadError, got %v", err)
	}
	if svc.Mode() != ModeDisabled {
		t.Errorf("mode after failed load = %v, want disabled", svc.Mode())
	}

	// Intake must never be blocked: the call still answers.
	if got := svc.ClassifyUrgency("lost passport"); got != model.TierUnrated {
		t.Errorf("ClassifyUrgency in disabled mode = %v, want Unrated", got)
	}
}

func TestLoadAndClassify(t *testing.T) {
	dir := savePair(t)

	svc := NewService(nil)
	if err := svc.Load(dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if svc.Mode() != ModeReady {
		t.Fatalf("mode = %v, want ready", svc.Mode())
	}

	if got := svc.ClassifyUrgency("urgent passport visa"); got != model.TierHigh {
		t.Errorf("ClassifyUrgency(passport text) = %v, want High", got)
	}
	if got := svc.ClassifyUrgency("cheap plastic pen"); got != model.TierLow {
		t.Errorf("ClassifyUrgency(pen text) = %v, want Low", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Load(savePair(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	first := svc.ClassifyUrgency("pen and passport")
	for i := 0; i < 20; i++ {
		if got := svc.ClassifyUrgency("pen and passport"); got != first {
			t.Fatalf("classification changed between calls: %v then %v", first, got)
		}
	}
}

func TestClassifyNeverFails(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Load(savePair(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Empty and all-OOV input score as the zero vector and still get a tier.
	for _, text := range []string{"", "zeppelin quasar xylophone"} {
		got := svc.ClassifyUrgency(text)
		if got == model.TierUnrated {
			t.Errorf("ClassifyUrgency(%q) = Unrated with a loaded model", text)
		}
	}
}

func TestReloadFailureKeepsPair(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Load(savePair(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := svc.Reload(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected Reload to report the load failure")
	}
	if svc.Mode() != ModeReady {
		t.Errorf("mode after failed reload = %v, want ready (previous pair kept)", svc.Mode())
	}
	if got := svc.ClassifyUrgency("urgent passport"); got == model.TierUnrated {
		t.Error("previous pair no longer serving after failed reload")
	}
}

func TestConcurrentClassify(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Load(savePair(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := svc.ClassifyUrgency("urgent passport visa")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := svc.ClassifyUrgency("urgent passport visa"); got != want {
					t.Errorf("concurrent call got %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
