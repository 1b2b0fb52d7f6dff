// Package diagnose predicts a disease and its danger level from an animal and
// five symptoms.
package diagnose

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/petdx/internal/classifier"
	"github.com/abhisek/petdx/internal/encoder"
	"github.com/abhisek/petdx/internal/explain"
)

// NumSymptoms is the number of symptom slots a request carries.
const NumSymptoms = 5

// Service encodes requests, runs both models and decodes their outputs.
// It holds no mutable state; one Service may serve concurrent callers.
type Service struct {
	registry *encoder.Registry
	disease  classifier.Classifier
	danger   classifier.Classifier
	logger   *slog.Logger
}

// New creates a Service. A nil logger uses slog.Default().
func New(registry *encoder.Registry, disease, danger classifier.Classifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry: registry,
		disease:  disease,
		danger:   danger,
		logger:   logger,
	}
}

// Registry returns the encoders the service was built with.
func (s *Service) Registry() *encoder.Registry { return s.registry }

// Predict runs one prediction. Unknown symptoms are encoded as
// encoder.Unknown; an unknown animal returns *encoder.UnknownLabelError.
func (s *Service) Predict(animal string, symptoms []string) (*Result, error) {
	log := s.logger.With("request_id", uuid.NewString())

	x, unknown, err := s.encode(animal, symptoms)
	if err != nil {
		return nil, err
	}
	if unknown > 0 {
		log.Warn("unknown symptoms encoded as sentinel", "count", unknown, "symptoms", symptoms)
	}

	disease, err := s.run("disease", s.disease, encoder.FieldDisease, x)
	if err != nil {
		return nil, err
	}
	danger, err := s.run("danger", s.danger, encoder.FieldDanger, x)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Disease:         disease,
		Explanation:     explain.Explain(disease),
		Danger:          danger,
		Features:        x,
		UnknownSymptoms: unknown,
	}
	log.Debug("prediction",
		"animal", animal,
		"features", x[:],
		"disease", res.Disease,
		"danger", res.Danger,
	)
	return res, nil
}

// encode builds the feature vector [animal, sym1..sym5].
func (s *Service) encode(animal string, symptoms []string) (classifier.FeatureVector, int, error) {
	var x classifier.FeatureVector
	if len(symptoms) != NumSymptoms {
		return x, 0, &InputError{Reason: fmt.Sprintf("expected %d symptoms, got %d", NumSymptoms, len(symptoms))}
	}

	code, err := s.registry.Encode(encoder.FieldAnimal, animal)
	if err != nil {
		return x, 0, err
	}
	x[0] = code

	unknown := 0
	for i, f := range encoder.SymptomFields {
		code, err := s.registry.Encode(f, symptoms[i])
		if err != nil {
			return x, 0, err
		}
		if code == encoder.Unknown {
			unknown++
		}
		x[i+1] = code
	}
	return x, unknown, nil
}

func (s *Service) run(name string, c classifier.Classifier, field encoder.Field, x classifier.FeatureVector) (string, error) {
	code, err := c.Predict(x)
	if err != nil {
		return "", &ModelError{Model: name, Err: err}
	}
	label, err := s.registry.Decode(field, code)
	if err != nil {
		return "", &ModelError{Model: name, Err: err}
	}
	return label, nil
}

// Report runs Predict and renders the outcome as display text. Errors never
// escape: input errors ask the caller to check their values, anything else
// is logged and reported as a failed prediction.
func (s *Service) Report(animal string, symptoms []string) string {
	res, err := s.Predict(animal, symptoms)
	if err != nil {
		return s.ErrorMessage(err)
	}
	return res.String()
}

// ErrorMessage renders err the way Report does.
func (s *Service) ErrorMessage(err error) string {
	if IsInputError(err) {
		return fmt.Sprintf("⚠️ Error: %v. Please check input values.", err)
	}
	s.logger.Error("prediction failed", "err", err)
	return fmt.Sprintf("⚠️ Error: prediction failed: %v", err)
}

// Close releases any model that holds native resources.
func (s *Service) Close() error {
	var errs []error
	for _, c := range []classifier.Classifier{s.disease, s.danger} {
		if closer, ok := c.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
