package encoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBundle = `{
  "encoders": {
    "Name":    ["Dog", "Cat"],
    "Sym1":    ["Fever", "Vomiting"],
    "Sym2":    ["Diarrhea", "Coughing"],
    "Sym3":    ["Fever", "Lethargy"],
    "Sym4":    ["Lethargy"],
    "Sym5":    ["Loss of appetite"],
    "Disease": ["Canine Parvovirus ", "Kennel cough"],
    "Danger":  ["High", "Low"]
  }
}`

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := ParseBundle(strings.NewReader(testBundle))
	require.NoError(t, err)
	return r
}

func TestRegistry_SymptomUnknownIsSentinel(t *testing.T) {
	r := testRegistry(t)
	for _, f := range SymptomFields {
		for _, label := range []string{"Sparkles", "", "fever", "Vomiting\n"} {
			code, err := r.Encode(f, label)
			require.NoError(t, err, "%s %q", f, label)
			assert.Equal(t, Unknown, code, "%s %q", f, label)
		}
	}
}

func TestRegistry_SymptomKnown(t *testing.T) {
	r := testRegistry(t)
	code, err := r.Encode(FieldSym1, "Vomiting")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestRegistry_AnimalUnknownIsError(t *testing.T) {
	r := testRegistry(t)
	_, err := r.Encode(FieldAnimal, "Unicorn")
	var ule *UnknownLabelError
	require.True(t, errors.As(err, &ule))
	assert.Equal(t, FieldAnimal, ule.Field)
}

func TestRegistry_UnknownField(t *testing.T) {
	r := testRegistry(t)
	_, err := r.Encode(Field("Sym6"), "Fever")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = r.Decode(Field("Sym6"), 0)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRegistry_RoundTripAllFields(t *testing.T) {
	r := testRegistry(t)
	for _, f := range AllFields {
		labels, err := r.Labels(f)
		require.NoError(t, err)
		for _, l := range labels {
			code, err := r.Encode(f, l)
			require.NoError(t, err)
			got, err := r.Decode(f, code)
			require.NoError(t, err)
			assert.Equal(t, l, got)
		}
	}
}

const paddedBundle = `{
  "encoders": {
    "Name":    ["Dog ", "Cat"],
    "Sym1":    ["Vomiting"],
    "Sym2":    ["Diarrhea"],
    "Sym3":    ["Fever"],
    "Sym4":    ["Lethargy "],
    "Sym5":    [" Loss of appetite"],
    "Disease": ["Lyme"],
    "Danger":  ["High"]
  }
}`

func TestRegistry_PaddedLabelsEncodeFromOfferedChoice(t *testing.T) {
	r, err := ParseBundle(strings.NewReader(paddedBundle))
	require.NoError(t, err)

	tests := []struct {
		name  string
		field Field
		label string
		want  int
	}{
		{"padded symptom offered form", FieldSym4, "Lethargy", 0},
		{"padded symptom raw form", FieldSym4, "Lethargy ", 0},
		{"leading padding", FieldSym5, "Loss of appetite", 0},
		{"padded animal offered form", FieldAnimal, "Dog", 1},
		{"padded animal raw form", FieldAnimal, "Dog ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := r.Labels(tt.field)
			require.NoError(t, err)
			assert.Contains(t, labels, strings.TrimSpace(tt.label))

			got, err := r.Encode(tt.field, tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_PaddedInputIsNotTrimmed(t *testing.T) {
	r, err := ParseBundle(strings.NewReader(paddedBundle))
	require.NoError(t, err)

	code, err := r.Encode(FieldSym1, "Vomiting ")
	require.NoError(t, err)
	assert.Equal(t, Unknown, code)

	_, err = r.Encode(FieldAnimal, "Cat ")
	var ule *UnknownLabelError
	assert.True(t, errors.As(err, &ule))
}

func TestRegistry_PaddedRoundTrip(t *testing.T) {
	r, err := ParseBundle(strings.NewReader(paddedBundle))
	require.NoError(t, err)
	for _, f := range AllFields {
		labels, err := r.Labels(f)
		require.NoError(t, err)
		for _, l := range labels {
			code, err := r.Encode(f, l)
			require.NoError(t, err, "%s %q", f, l)
			got, err := r.Decode(f, code)
			require.NoError(t, err)
			assert.Equal(t, l, got)
		}
	}
}

func TestRegistry_DecodeTrims(t *testing.T) {
	r := testRegistry(t)
	got, err := r.Decode(FieldDisease, 0)
	require.NoError(t, err)
	assert.Equal(t, "Canine Parvovirus", got)
}

func TestNewRegistry_MissingField(t *testing.T) {
	e, err := New(FieldAnimal, []string{"Dog"})
	require.NoError(t, err)
	_, err = NewRegistry(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing encoder for Sym1")
}

func TestNewRegistry_Duplicate(t *testing.T) {
	a, _ := New(FieldAnimal, []string{"Dog"})
	b, _ := New(FieldAnimal, []string{"Cat"})
	_, err := NewRegistry(a, b)
	require.Error(t, err)
}

func TestParseBundle_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"encoders":`},
		{"missing encoders", `{}`},
		{"missing field", `{"encoders": {"Name": ["Dog"]}}`},
		{"empty label set", strings.Replace(testBundle, `["Lethargy"]`, `[]`, 1)},
		{"non-string label", strings.Replace(testBundle, `["Lethargy"]`, `[3]`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBundle(strings.NewReader(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestBundle_RoundTrip(t *testing.T) {
	r := testRegistry(t)
	r2, err := r.Bundle().Registry()
	require.NoError(t, err)
	for _, f := range AllFields {
		want, _ := r.Labels(f)
		got, _ := r2.Labels(f)
		assert.Equal(t, want, got, f)
	}
}
