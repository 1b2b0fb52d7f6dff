package diagnose

import (
	"strings"

	"github.com/abhisek/petdx/internal/classifier"
)

// Result is the decoded outcome of one prediction.
type Result struct {
	Disease     string
	Explanation string
	Danger      string

	// Features is the vector both models were given.
	Features classifier.FeatureVector
	// UnknownSymptoms counts symptom slots encoded as encoder.Unknown.
	UnknownSymptoms int
}

// Line labels, in display order.
const (
	DiseaseLabel     = "🦠 Predicted Disease"
	ExplanationLabel = "📌 Explanation"
	DangerLabel      = "⚠️ Danger Level"
)

// Lines returns the three display lines.
func (r *Result) Lines() []string {
	return []string{
		DiseaseLabel + ": " + r.Disease,
		ExplanationLabel + ": " + r.Explanation,
		DangerLabel + ": " + r.Danger,
	}
}

func (r *Result) String() string {
	return strings.Join(r.Lines(), "\n")
}
