package entity

const (
	DefaultModelType = "CatBoost"
	DefaultMAPE      = 11.0
	DefaultR2        = 0.0
)

// ModelMetadata is the JSON sidecar written next to the model at training
// time. Every field is optional; the accessors apply the defaults.
type ModelMetadata struct {
	Features     []string       `json:"features"`
	UseLogTarget *bool          `json:"use_log_target"`
	TestMetrics  map[string]any `json:"test_metrics"`
	ModelType    string         `json:"model_type"`
}

func (m ModelMetadata) LogTarget() bool {
	if m.UseLogTarget == nil {
		return true
	}
	return *m.UseLogTarget
}

func (m ModelMetadata) MAPE() float64 {
	return m.metric("mape", DefaultMAPE)
}

func (m ModelMetadata) R2() float64 {
	return m.metric("r2", DefaultR2)
}

func (m ModelMetadata) Type() string {
	if m.ModelType == "" {
		return DefaultModelType
	}
	return m.ModelType
}

func (m ModelMetadata) metric(name string, def float64) float64 {
	v, ok := m.TestMetrics[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return def
	}
}
