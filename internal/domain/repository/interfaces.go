package repository

import (
	"context"

	"carprice-api/internal/domain/entity"
)

// Regressor evaluates a loaded model on a single row laid out in the order
// the model was trained with. Implementations must be safe for concurrent use.
type Regressor interface {
	Predict(row []any) (float64, error)
}

type ModelLoader interface {
	Load(ctx context.Context) (Regressor, entity.ModelMetadata, error)
}

type DatasetSource interface {
	Rows(ctx context.Context) ([]entity.DatasetRow, error)
}

type PredictionCache interface {
	Get(ctx context.Context, key string) (*entity.PredictionResult, bool, error)
	Set(ctx context.Context, key string, result *entity.PredictionResult) error
}
