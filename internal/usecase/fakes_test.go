package usecase

import (
	"context"
	"time"

	"carprice-api/internal/domain/entity"
	"carprice-api/internal/domain/repository"
)

type fakeRegressor struct {
	value float64
	err   error
	rows  [][]any
}

func (f *fakeRegressor) Predict(row []any) (float64, error) {
	f.rows = append(f.rows, row)
	return f.value, f.err
}

type fakeLoader struct {
	model repository.Regressor
	meta  entity.ModelMetadata
	err   error
}

func (f fakeLoader) Load(context.Context) (repository.Regressor, entity.ModelMetadata, error) {
	return f.model, f.meta, f.err
}

type fakeDataset struct {
	rows []entity.DatasetRow
	err  error
}

func (f fakeDataset) Rows(context.Context) ([]entity.DatasetRow, error) {
	return f.rows, f.err
}

type mapCache struct {
	items map[string]entity.PredictionResult
	gets  int
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string]entity.PredictionResult{}}
}

func (m *mapCache) Get(_ context.Context, key string) (*entity.PredictionResult, bool, error) {
	m.gets++
	v, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

func (m *mapCache) Set(_ context.Context, key string, r *entity.PredictionResult) error {
	m.items[key] = *r
	return nil
}

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC) }
}

func boolPtr(b bool) *bool { return &b }

func sampleRecord() entity.FeatureRecord {
	return entity.FeatureRecord{
		Brand:         "BMW",
		Model:         "3 Serisi",
		Series:        "320i",
		FuelType:      "Benzin",
		Transmission:  "Otomatik",
		BodyType:      "Sedan",
		Color:         "Siyah",
		Drivetrain:    "Arkadan Çekiş",
		Province:      "İstanbul",
		Mileage:       75000,
		ModelYear:     2020,
		EnginePower:   184,
		EngineVolume:  1998,
		OriginalParts: 14,
	}
}
