package classify

import (
	"encoding/json"
	"fmt"
	"sort"
)

// LabelEncoder maps category names onto dense integer labels and back.
// Classes are stored sorted so the encoding is deterministic for a given
// category set.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// FitLabels builds an encoder over the distinct categories and returns the
// encoded labels for the input.
func FitLabels(categories []string) (*LabelEncoder, []int) {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	classes := make([]string, 0, len(set))
	for c := range set {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	enc := &LabelEncoder{classes: classes, index: make(map[string]int, len(classes))}
	for i, c := range classes {
		enc.index[c] = i
	}

	labels := make([]int, len(categories))
	for i, c := range categories {
		labels[i] = enc.index[c]
	}
	return enc, labels
}

// Classes returns the sorted category names. Callers must not mutate.
func (e *LabelEncoder) Classes() []string { return e.classes }

func (e *LabelEncoder) Len() int { return len(e.classes) }

// Inverse returns the category name for an encoded label.
func (e *LabelEncoder) Inverse(label int) (string, error) {
	if label < 0 || label >= len(e.classes) {
		return "", fmt.Errorf("label %d out of range [0,%d)", label, len(e.classes))
	}
	return e.classes[label], nil
}

func (e *LabelEncoder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Classes []string `json:"classes"`
	}{Classes: e.classes})
}

func (e *LabelEncoder) UnmarshalJSON(data []byte) error {
	var raw struct {
		Classes []string `json:"classes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.classes = raw.Classes
	e.index = make(map[string]int, len(raw.Classes))
	for i, c := range raw.Classes {
		e.index[c] = i
	}
	return nil
}
