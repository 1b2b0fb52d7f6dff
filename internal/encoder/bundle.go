package encoder

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/abhisek/petdx/internal/artifact"
)

//go:embed bundle_schema.json
var bundleSchemaDef []byte

var bundleSchema = artifact.Schema{Name: "encoder-bundle", Definition: bundleSchemaDef}

// Bundle is the persisted form of a registry: the fitted label set of every
// field, keyed by field name.
type Bundle struct {
	Encoders map[Field][]string `json:"encoders"`
}

// LoadBundle reads an encoder bundle from path and builds a Registry.
func LoadBundle(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open encoder bundle: %w", err)
	}
	defer f.Close()

	r, err := ParseBundle(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// ParseBundle decodes and validates a bundle from r and builds a Registry.
// Fields beyond AllFields are ignored.
func ParseBundle(r io.Reader) (*Registry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read encoder bundle: %w", err)
	}

	var b Bundle
	if err := artifact.Decode(bundleSchema, raw, &b); err != nil {
		return nil, err
	}
	return b.Registry()
}

// Registry builds a Registry from the bundle.
func (b Bundle) Registry() (*Registry, error) {
	encoders := make([]*CategoricalEncoder, 0, len(AllFields))
	for _, f := range AllFields {
		e, err := New(f, b.Encoders[f])
		if err != nil {
			return nil, err
		}
		encoders = append(encoders, e)
	}
	return NewRegistry(encoders...)
}

// Bundle returns the persisted form of r.
func (r *Registry) Bundle() Bundle {
	b := Bundle{Encoders: make(map[Field][]string, len(r.encoders))}
	for f, e := range r.encoders {
		b.Encoders[f] = slices.Clone(e.labels)
	}
	return b
}
