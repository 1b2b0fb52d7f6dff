package classifier

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages process-wide ONNX Runtime initialization.
var ortEnv struct {
	once sync.Once
	err  error
}

func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// ONNX runs a classifier exported to ONNX, such as a scikit-learn pipeline
// converted with skl2onnx. The model takes one [1, 6] tensor and its
// "label" output is the predicted code.
type ONNX struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	inputType  ort.TensorElementDataType
	outputName string
}

// NewONNX loads modelPath. libPath is the ONNX Runtime shared library; when
// empty, libonnxruntime.so next to the model is used.
func NewONNX(modelPath, libPath string) (*ONNX, error) {
	if libPath == "" {
		libPath = filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	}
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected 1 input, model has %d", len(inputs))
	}
	in := inputs[0]
	switch in.DataType {
	case ort.TensorElementDataTypeFloat, ort.TensorElementDataTypeInt64:
	default:
		return nil, fmt.Errorf("onnx: unsupported input type %v", in.DataType)
	}
	outputName, err := labelOutput(outputs)
	if err != nil {
		return nil, err
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(1)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(modelPath, []string{in.Name}, []string{outputName}, opts)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &ONNX{
		session:    session,
		inputName:  in.Name,
		inputType:  in.DataType,
		outputName: outputName,
	}, nil
}

// labelOutput picks the output carrying the predicted class.
func labelOutput(outputs []ort.InputOutputInfo) (string, error) {
	if len(outputs) == 0 {
		return "", fmt.Errorf("onnx: model has no outputs")
	}
	for _, o := range outputs {
		if o.Name == "label" || o.Name == "output_label" {
			return o.Name, nil
		}
	}
	return outputs[0].Name, nil
}

// Predict runs one inference call.
func (o *ONNX) Predict(x FeatureVector) (int, error) {
	shape := ort.NewShape(1, NumFeatures)
	var input ort.Value
	switch o.inputType {
	case ort.TensorElementDataTypeInt64:
		data := make([]int64, NumFeatures)
		for i, v := range x {
			data[i] = int64(v)
		}
		t, err := ort.NewTensor(shape, data)
		if err != nil {
			return 0, fmt.Errorf("onnx: failed to create input tensor: %w", err)
		}
		defer t.Destroy()
		input = t
	default:
		data := make([]float32, NumFeatures)
		for i, v := range x {
			data[i] = float32(v)
		}
		t, err := ort.NewTensor(shape, data)
		if err != nil {
			return 0, fmt.Errorf("onnx: failed to create input tensor: %w", err)
		}
		defer t.Destroy()
		input = t
	}

	out, err := ort.NewEmptyTensor[int64](ort.NewShape(1))
	if err != nil {
		return 0, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer out.Destroy()

	if err := o.session.Run([]ort.Value{input}, []ort.Value{out}); err != nil {
		return 0, fmt.Errorf("onnx: inference failed: %w", err)
	}
	return int(out.GetData()[0]), nil
}

// Close releases the session.
func (o *ONNX) Close() error {
	return o.session.Destroy()
}
