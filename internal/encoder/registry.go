package encoder

import "fmt"

// Registry holds the encoder of every field. It is read-only once built.
type Registry struct {
	encoders map[Field]*CategoricalEncoder
}

// NewRegistry builds a registry from encoders. Every field in AllFields must
// be covered.
func NewRegistry(encoders ...*CategoricalEncoder) (*Registry, error) {
	m := make(map[Field]*CategoricalEncoder, len(encoders))
	for _, e := range encoders {
		if _, dup := m[e.Field()]; dup {
			return nil, fmt.Errorf("registry: duplicate encoder for %s", e.Field())
		}
		m[e.Field()] = e
	}
	for _, f := range AllFields {
		if _, ok := m[f]; !ok {
			return nil, fmt.Errorf("registry: missing encoder for %s", f)
		}
	}
	return &Registry{encoders: m}, nil
}

// Encoder returns the encoder for field.
func (r *Registry) Encoder(field Field) (*CategoricalEncoder, error) {
	e, ok := r.encoders[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return e, nil
}

// Encode returns the code for label under field. Symptom fields map labels
// they don't know to Unknown without an error; every other field returns
// *UnknownLabelError.
func (r *Registry) Encode(field Field, label string) (int, error) {
	e, err := r.Encoder(field)
	if err != nil {
		return 0, err
	}
	code, err := e.Encode(label)
	if err != nil {
		if field.IsSymptom() {
			return Unknown, nil
		}
		return 0, err
	}
	return code, nil
}

// Decode returns the trimmed label for a code produced by a classifier.
func (r *Registry) Decode(field Field, code int) (string, error) {
	e, err := r.Encoder(field)
	if err != nil {
		return "", err
	}
	return e.Decode(code)
}

// Labels returns the known labels of field in code order.
func (r *Registry) Labels(field Field) ([]string, error) {
	e, err := r.Encoder(field)
	if err != nil {
		return nil, err
	}
	return e.Labels(), nil
}
