package store

import (
	"context"
	"path/filepath"
	"testing"

	"carprice-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyModel = `{
	"feature_names": ["marka", "km_temiz"],
	"bias": 13,
	"trees": [{"splits": [{"feature": 1, "border": 100000}], "leaf_values": [0.2, -0.2]}]
}`

func TestFileModelLoader_ModelMissing(t *testing.T) {
	dir := t.TempDir()
	loader := NewFileModelLoader(filepath.Join(dir, "model.json"), filepath.Join(dir, "meta.json"))

	model, _, err := loader.Load(context.Background())

	assert.Nil(t, model)
	assert.ErrorIs(t, err, entity.ErrModelFileNotFound)
}

func TestFileModelLoader_MetadataOptional(t *testing.T) {
	modelPath := writeFile(t, "model.json", tinyModel)
	loader := NewFileModelLoader(modelPath, filepath.Join(t.TempDir(), "meta.json"))

	model, meta, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, model)

	assert.Empty(t, meta.Features)
	assert.True(t, meta.LogTarget())
	assert.Equal(t, 11.0, meta.MAPE())
	assert.Equal(t, 0.0, meta.R2())
	assert.Equal(t, "CatBoost", meta.Type())

	got, err := model.Predict([]any{"BMW", 50000.0})
	require.NoError(t, err)
	assert.InDelta(t, 13.2, got, 1e-12)
}

func TestFileModelLoader_WithMetadata(t *testing.T) {
	modelPath := writeFile(t, "model.json", tinyModel)
	metaPath := writeFile(t, "meta.json", `{
		"features": ["marka", "km_temiz"],
		"use_log_target": false,
		"test_metrics": {"mape": 9.4, "r2": 0.92, "rmse": 101234.5},
		"model_type": "CatBoostRegressor",
		"trained_at": "2025-11-02"
	}`)

	_, meta, err := NewFileModelLoader(modelPath, metaPath).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"marka", "km_temiz"}, meta.Features)
	assert.False(t, meta.LogTarget())
	assert.Equal(t, 9.4, meta.MAPE())
	assert.Equal(t, 0.92, meta.R2())
	assert.Equal(t, "CatBoostRegressor", meta.Type())
}

func TestFileModelLoader_BadMetadata(t *testing.T) {
	modelPath := writeFile(t, "model.json", tinyModel)
	metaPath := writeFile(t, "meta.json", `{"features": 3}`)

	model, _, err := NewFileModelLoader(modelPath, metaPath).Load(context.Background())

	assert.Nil(t, model)
	assert.ErrorContains(t, err, "failed to decode model metadata")
}

func TestFileModelLoader_BadModel(t *testing.T) {
	modelPath := writeFile(t, "model.json", `{"trees": []}`)

	_, _, err := NewFileModelLoader(modelPath, filepath.Join(t.TempDir(), "meta.json")).Load(context.Background())

	assert.ErrorContains(t, err, "no trees")
}
