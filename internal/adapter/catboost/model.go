// Package catboost evaluates oblivious tree ensembles exported to JSON.
//
// Each tree applies the same split at every node of a level, so a tree of
// depth d is a list of d splits and 2^d leaf values. Split i sets bit i of the
// leaf index when it holds. Numeric splits hold when value > border; a value
// that is not a number never satisfies one. Categorical splits hold when the
// value equals the one-hot category.
package catboost

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

type Split struct {
	Feature int      `json:"feature"`
	Border  *float64 `json:"border,omitempty"`
	Value   *string  `json:"value,omitempty"`
}

type Tree struct {
	Splits     []Split   `json:"splits"`
	LeafValues []float64 `json:"leaf_values"`
}

type Model struct {
	ModelType    string   `json:"model_type"`
	FeatureNames []string `json:"feature_names"`
	Bias         float64  `json:"bias"`
	Scale        *float64 `json:"scale"`
	Trees        []Tree   `json:"trees"`
}

func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Trees) == 0 {
		return errors.New("model has no trees")
	}
	for t, tree := range m.Trees {
		if want := 1 << len(tree.Splits); len(tree.LeafValues) != want {
			return fmt.Errorf("tree %d: %d leaf values for depth %d, want %d", t, len(tree.LeafValues), len(tree.Splits), want)
		}
		for i, s := range tree.Splits {
			if (s.Border == nil) == (s.Value == nil) {
				return fmt.Errorf("tree %d split %d: exactly one of border or value must be set", t, i)
			}
			if s.Feature < 0 || (len(m.FeatureNames) > 0 && s.Feature >= len(m.FeatureNames)) {
				return fmt.Errorf("tree %d split %d: feature index %d out of range", t, i, s.Feature)
			}
		}
	}
	return nil
}

// Predict returns bias + scale * sum of the selected leaf values.
func (m *Model) Predict(row []any) (float64, error) {
	if len(m.FeatureNames) > 0 && len(row) != len(m.FeatureNames) {
		return 0, fmt.Errorf("feature count mismatch: got %d, model expects %d", len(row), len(m.FeatureNames))
	}

	var sum float64
	for t, tree := range m.Trees {
		leaf := 0
		for i, s := range tree.Splits {
			if s.Feature >= len(row) {
				return 0, fmt.Errorf("tree %d split %d: feature index %d beyond row of %d", t, i, s.Feature, len(row))
			}
			if s.holds(row[s.Feature]) {
				leaf |= 1 << i
			}
		}
		sum += tree.LeafValues[leaf]
	}

	scale := 1.0
	if m.Scale != nil {
		scale = *m.Scale
	}
	return m.Bias + scale*sum, nil
}

func (s Split) holds(v any) bool {
	if s.Value != nil {
		return categorical(v) == *s.Value
	}
	x := numeric(v)
	if math.IsNaN(x) {
		return false
	}
	return x > *s.Border
}

func numeric(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	default:
		return math.NaN()
	}
}

func categorical(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
