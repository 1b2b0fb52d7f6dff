package encoder

import (
	"fmt"
	"slices"
	"strings"
)

// CategoricalEncoder maps the labels of one field to dense integer codes.
// Labels are kept sorted, so a label's code is its index, matching the
// classes_ ordering of the encoder the models were trained with.
type CategoricalEncoder struct {
	field   Field
	labels  []string
	codes   map[string]int
	// trimmed indexes codes by the whitespace-trimmed label, the form
	// Labels and Decode hand out.
	trimmed map[string]int
}

// New builds an encoder for field from labels. Duplicates are dropped.
func New(field Field, labels []string) (*CategoricalEncoder, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("encoder %s: no labels", field)
	}
	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	codes := make(map[string]int, len(sorted))
	trimmed := make(map[string]int, len(sorted))
	for i, l := range sorted {
		codes[l] = i
		t := strings.TrimSpace(l)
		if prev, dup := trimmed[t]; dup {
			return nil, fmt.Errorf("encoder %s: labels %q and %q both trim to %q", field, sorted[prev], l, t)
		}
		trimmed[t] = i
	}
	return &CategoricalEncoder{field: field, labels: sorted, codes: codes, trimmed: trimmed}, nil
}

// Field returns the field this encoder covers.
func (e *CategoricalEncoder) Field() Field { return e.field }

// Len returns the number of known labels.
func (e *CategoricalEncoder) Len() int { return len(e.labels) }

// Contains reports whether Encode accepts label.
func (e *CategoricalEncoder) Contains(label string) bool {
	_, ok := e.lookup(label)
	return ok
}

// Encode returns the code for label, or *UnknownLabelError. label must match
// a fitted label exactly or in its trimmed form; the input itself is never
// trimmed.
func (e *CategoricalEncoder) Encode(label string) (int, error) {
	code, ok := e.lookup(label)
	if !ok {
		return 0, &UnknownLabelError{Field: e.field, Label: label}
	}
	return code, nil
}

func (e *CategoricalEncoder) lookup(label string) (int, bool) {
	if code, ok := e.codes[label]; ok {
		return code, true
	}
	code, ok := e.trimmed[label]
	return code, ok
}

// Decode returns the whitespace-trimmed label for code.
func (e *CategoricalEncoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.labels) {
		return "", &DecodeError{Field: e.field, Code: code, Size: len(e.labels)}
	}
	return strings.TrimSpace(e.labels[code]), nil
}

// Labels returns the trimmed labels in code order.
func (e *CategoricalEncoder) Labels() []string {
	out := make([]string, len(e.labels))
	for i, l := range e.labels {
		out[i] = strings.TrimSpace(l)
	}
	return out
}
