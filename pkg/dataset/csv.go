package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads (text, label) pairs from a CSV file with a header row.
// Column lookup is case-insensitive. Rows with an empty text or label are
// dropped, whitespace runs inside texts are collapsed, and exact duplicate
// texts are de-duplicated keeping the first occurrence.
func Load(path, textColumn, labelColumn string) (texts, labels []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read dataset header: %w", err)
	}
	textIdx, labelIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(textColumn):
			textIdx = i
		case strings.ToLower(labelColumn):
			labelIdx = i
		}
	}
	if textIdx < 0 || labelIdx < 0 {
		return nil, nil, fmt.Errorf("dataset is missing column %q or %q", textColumn, labelColumn)
	}

	seen := make(map[string]struct{})
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read dataset row: %w", err)
		}
		if textIdx >= len(record) || labelIdx >= len(record) {
			continue
		}
		text := strings.Join(strings.Fields(record[textIdx]), " ")
		label := strings.TrimSpace(record[labelIdx])
		if text == "" || label == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		texts = append(texts, text)
		labels = append(labels, label)
	}
	if len(texts) == 0 {
		return nil, nil, fmt.Errorf("dataset %s has no usable rows", path)
	}
	return texts, labels, nil
}
