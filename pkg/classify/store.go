package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/artem13815/screening/pkg/nlp"
)

const (
	classifierFile   = "classifier.json"
	labelEncoderFile = "label_encoder.json"
)

// Store persists classifiers as named artifacts: a directory holding the
// serialized model and the label encoder as two files. The embedding model is
// referenced by configuration, never serialized here.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// modelArtifact is the on-disk envelope for the fitted model.
type modelArtifact struct {
	Kind     string         `json:"kind"`
	Logistic *logisticModel `json:"logistic,omitempty"`
	Forest   *forestModel   `json:"forest,omitempty"`
}

// Save writes both artifact files into a staging directory and renames it
// into place, so readers observe either the whole pair or nothing. An
// existing generation under the same name is replaced; training is an
// offline, non-concurrent job, so remove-then-rename is safe here (serving
// swaps go through Loader, not through files).
func (s *Store) Save(name string, c *Classifier) error {
	if !c.Loaded() {
		return ErrNotLoaded
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	stage, err := os.MkdirTemp(s.dir, "."+name+"-stage-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(stage)

	art := modelArtifact{Kind: c.model.kind()}
	switch m := c.model.(type) {
	case *logisticModel:
		art.Logistic = m
	case *forestModel:
		art.Forest = m
	default:
		return fmt.Errorf("unknown model kind %q", c.model.kind())
	}

	if err := writeJSON(filepath.Join(stage, classifierFile), art); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(stage, labelEncoderFile), c.labels); err != nil {
		return err
	}

	target := filepath.Join(s.dir, name)
	if err := os.RemoveAll(target); err != nil {
		return err
	}
	return os.Rename(stage, target)
}

// Load reads a named artifact into a fresh Classifier bound to the given
// embedder. A missing directory (or both files absent) is ErrModelNotFound;
// exactly one file present means a botched save: ErrCorruptArtifact.
func (s *Store) Load(name string, embedder nlp.Embedder) (*Classifier, error) {
	dir := filepath.Join(s.dir, name)

	var art modelArtifact
	artErr := readJSON(filepath.Join(dir, classifierFile), &art)
	var labels LabelEncoder
	encErr := readJSON(filepath.Join(dir, labelEncoderFile), &labels)

	switch {
	case os.IsNotExist(artErr) && os.IsNotExist(encErr):
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	case os.IsNotExist(artErr) || os.IsNotExist(encErr):
		return nil, fmt.Errorf("%w: %q is missing one of its files", ErrCorruptArtifact, name)
	case artErr != nil:
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, artErr)
	case encErr != nil:
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, encErr)
	}

	c := New(embedder)
	c.labels = &labels
	switch art.Kind {
	case ModelLogistic:
		if art.Logistic == nil {
			return nil, fmt.Errorf("%w: %q has no logistic weights", ErrCorruptArtifact, name)
		}
		c.model = art.Logistic
	case ModelRandomForest:
		if art.Forest == nil {
			return nil, fmt.Errorf("%w: %q has no forest payload", ErrCorruptArtifact, name)
		}
		c.model = art.Forest
	default:
		return nil, fmt.Errorf("%w: %q has unknown model kind %q", ErrCorruptArtifact, name, art.Kind)
	}
	return c, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
