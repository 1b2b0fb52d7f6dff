// Package classifier runs the pre-trained disease and danger models.
//
// A model is anything that maps one encoded feature vector to one output
// code. Codes are decoded by the encoder of the model's target field.
package classifier

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NumFeatures is the width of a feature vector: the animal then five symptoms.
const NumFeatures = 6

// FeatureVector is the encoded form of one prediction request.
type FeatureVector [NumFeatures]int

// Classifier predicts an output code for a feature vector.
type Classifier interface {
	Predict(x FeatureVector) (int, error)
}

// Func adapts a function to the Classifier interface.
type Func func(x FeatureVector) (int, error)

func (f Func) Predict(x FeatureVector) (int, error) { return f(x) }

// Constant returns a Classifier that always predicts code.
func Constant(code int) Classifier {
	return Func(func(FeatureVector) (int, error) { return code, nil })
}

// Options configures model loading.
type Options struct {
	// RuntimeLibrary is the path of the ONNX Runtime shared library. When
	// empty, libonnxruntime.so next to the model is used.
	RuntimeLibrary string
}

// Load opens the model at path, choosing the backend by file extension:
// ".json" for an exported tree ensemble, ".onnx" for an ONNX model.
func Load(path string, opts Options) (Classifier, error) {
	var (
		c   Classifier
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		c, err = LoadForest(path)
	case ".onnx":
		c, err = NewONNX(path, opts.RuntimeLibrary)
	default:
		return nil, fmt.Errorf("load model %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
