package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"carprice-api/internal/adapter/catboost"
	"carprice-api/internal/domain/entity"
	"carprice-api/internal/domain/repository"
)

// FileModelLoader reads the exported model and its metadata sidecar from disk.
type FileModelLoader struct {
	modelPath string
	metaPath  string
}

func NewFileModelLoader(modelPath, metaPath string) *FileModelLoader {
	return &FileModelLoader{
		modelPath: modelPath,
		metaPath:  metaPath,
	}
}

func (l *FileModelLoader) Load(ctx context.Context) (repository.Regressor, entity.ModelMetadata, error) {
	var meta entity.ModelMetadata

	if _, err := os.Stat(l.modelPath); errors.Is(err, fs.ErrNotExist) {
		return nil, meta, fmt.Errorf("%w: %s", entity.ErrModelFileNotFound, l.modelPath)
	}

	model, err := catboost.Load(l.modelPath)
	if err != nil {
		return nil, meta, fmt.Errorf("failed to read model %s: %w", l.modelPath, err)
	}

	// The sidecar is optional; the metadata accessors supply defaults.
	data, err := os.ReadFile(l.metaPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return model, meta, nil
	case err != nil:
		return nil, meta, fmt.Errorf("failed to read model metadata %s: %w", l.metaPath, err)
	}

	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, entity.ModelMetadata{}, fmt.Errorf("failed to decode model metadata %s: %w", l.metaPath, err)
	}
	return model, meta, nil
}
