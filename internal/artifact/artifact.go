// Package artifact persists and loads the vectorizer+classifier pair.
// The two halves are always written together under one directory with a
// shared pair ID, so a vectorizer from one training run can never be
// combined with a classifier from another.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/aleeshaaz/lostfound/internal/engine/classifier"
	"github.com/aleeshaaz/lostfound/internal/engine/vectorizer"
	"github.com/aleeshaaz/lostfound/internal/model"
)

const (
	manifestFile   = "manifest.json"
	vectorizerFile = "vectorizer.json"
	modelFile      = "model.json"

	formatVersion = 1
)

// manifest records the pairing of the two serialized halves.
type manifest struct {
	Version   int       `json:"version"`
	PairID    string    `json:"pair_id"`
	CreatedAt time.Time `json:"created_at"`
}

// pairedFile wraps a serialized half with the pair ID it belongs to.
type pairedFile struct {
	PairID  string          `json:"pair_id"`
	Payload json.RawMessage `json:"payload"`
}

// Save writes the pair to dir atomically: everything is staged in a
// temporary directory and renamed into place, so either both halves land
// or neither does. An existing artifact at dir is replaced.
func Save(dir string, vec *vectorizer.Vectorizer, cls *classifier.Model) error {
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	tmp, err := os.MkdirTemp(parent, ".pair-*")
	if err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	defer os.RemoveAll(tmp)

	pairID := uuid.NewString()
	m := manifest{Version: formatVersion, PairID: pairID, CreatedAt: time.Now().UTC()}

	if err := writeJSON(filepath.Join(tmp, manifestFile), m); err != nil {
		return err
	}
	if err := writePaired(filepath.Join(tmp, vectorizerFile), pairID, vec); err != nil {
		return err
	}
	if err := writePaired(filepath.Join(tmp, modelFile), pairID, cls); err != nil {
		return err
	}

	// Swap the staged directory into place. The brief backup rename keeps
	// the previous pair recoverable if the final rename fails.
	backup := dir + ".old"
	if _, err := os.Stat(dir); err == nil {
		if err := os.Rename(dir, backup); err != nil {
			return fmt.Errorf("artifact: %w", err)
		}
	}
	if err := os.Rename(tmp, dir); err != nil {
		os.Rename(backup, dir)
		return fmt.Errorf("artifact: %w", err)
	}
	os.RemoveAll(backup)
	return nil
}

// Load reads a matched pair from dir. Any missing file, corrupt JSON,
// unsupported format version, or pair-ID mismatch yields a ModelLoadError.
func Load(dir string) (*vectorizer.Vectorizer, *classifier.Model, error) {
	var m manifest
	if err := readJSON(filepath.Join(dir, manifestFile), &m); err != nil {
		return nil, nil, &model.ModelLoadError{Path: dir, Err: err}
	}
	if m.Version != formatVersion {
		return nil, nil, &model.ModelLoadError{
			Path: dir,
			Err:  fmt.Errorf("unsupported artifact version %d (want %d)", m.Version, formatVersion),
		}
	}

	var vec vectorizer.Vectorizer
	if err := readPaired(filepath.Join(dir, vectorizerFile), m.PairID, &vec); err != nil {
		return nil, nil, &model.ModelLoadError{Path: dir, Err: err}
	}
	var cls classifier.Model
	if err := readPaired(filepath.Join(dir, modelFile), m.PairID, &cls); err != nil {
		return nil, nil, &model.ModelLoadError{Path: dir, Err: err}
	}

	return &vec, &cls, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("artifact: marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	return nil
}

func writePaired(path, pairID string, payload json.Marshaler) error {
	raw, err := payload.MarshalJSON()
	if err != nil {
		return fmt.Errorf("artifact: marshal %s: %w", filepath.Base(path), err)
	}
	return writeJSON(path, pairedFile{PairID: pairID, Payload: raw})
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readPaired(path, pairID string, payload json.Unmarshaler) error {
	var pf pairedFile
	if err := readJSON(path, &pf); err != nil {
		return err
	}
	if pf.PairID != pairID {
		return fmt.Errorf("%s belongs to pair %s, manifest says %s",
			filepath.Base(path), pf.PairID, pairID)
	}
	if err := payload.UnmarshalJSON(pf.Payload); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
