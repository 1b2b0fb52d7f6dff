package classifier

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/petdx/internal/artifact"
)

//go:embed forest_schema.json
var forestSchemaDef []byte

var forestSchema = artifact.Schema{Name: "tree-ensemble", Definition: forestSchemaDef}

// leaf marks a node without children, as in scikit-learn's tree arrays.
const leaf = -1

// Node is one entry of a fitted tree. Internal nodes send a sample left when
// x[Feature] <= Threshold. Leaves carry per-class sample weights in Value.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

func (n Node) isLeaf() bool { return n.Left == leaf && n.Right == leaf }

// Tree is a fitted decision tree. Node 0 is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a tree ensemble exported from a fitted decision tree or random
// forest. A single tree is a forest of one.
type Forest struct {
	Kind      string `json:"kind,omitempty"`
	NFeatures int    `json:"n_features"`
	// Classes maps a leaf value index to the output code.
	Classes []int  `json:"classes"`
	Trees   []Tree `json:"trees"`
}

// LoadForest reads an exported tree ensemble from path.
func LoadForest(path string) (*Forest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	forest, err := ParseForest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return forest, nil
}

// ParseForest decodes and validates an exported tree ensemble.
func ParseForest(r io.Reader) (*Forest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var f Forest
	if err := artifact.Decode(forestSchema, raw, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the structural invariants Predict relies on. Children
// always follow their parent, so every walk terminates.
func (f *Forest) Validate() error {
	if f.NFeatures != NumFeatures {
		return fmt.Errorf("model expects %d features, feature vectors have %d", f.NFeatures, NumFeatures)
	}
	if len(f.Classes) == 0 {
		return fmt.Errorf("model has no classes")
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("model has no trees")
	}
	for ti, t := range f.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d: no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.isLeaf() {
				if len(n.Value) != len(f.Classes) {
					return fmt.Errorf("tree %d node %d: leaf has %d values, want %d", ti, ni, len(n.Value), len(f.Classes))
				}
				continue
			}
			if n.Left == leaf || n.Right == leaf {
				return fmt.Errorf("tree %d node %d: exactly one child", ti, ni)
			}
			if n.Feature < 0 || n.Feature >= f.NFeatures {
				return fmt.Errorf("tree %d node %d: feature %d out of range", ti, ni, n.Feature)
			}
			for _, c := range []int{n.Left, n.Right} {
				if c <= ni || c >= len(t.Nodes) {
					return fmt.Errorf("tree %d node %d: invalid child %d", ti, ni, c)
				}
			}
		}
	}
	return nil
}

// Predict returns the class with the highest mean probability across trees.
// Ties go to the lowest class index.
func (f *Forest) Predict(x FeatureVector) (int, error) {
	proba := make([]float64, len(f.Classes))
	for i := range f.Trees {
		value := f.Trees[i].apply(x)
		var total float64
		for _, v := range value {
			total += v
		}
		if total == 0 {
			continue
		}
		for c, v := range value {
			proba[c] += v / total
		}
	}

	best := 0
	for c := 1; c < len(proba); c++ {
		if proba[c] > proba[best] {
			best = c
		}
	}
	return f.Classes[best], nil
}

// apply walks x to a leaf and returns its value.
func (t *Tree) apply(x FeatureVector) []float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value
		}
		if float64(x[n.Feature]) <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
