package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedFeatures(t *testing.T) {
	tests := []struct {
		name          string
		modelYear     int
		mileage       float64
		wantYear      int
		wantAge       int
		wantKmPerYear float64
	}{
		{name: "current year car", modelYear: 2026, mileage: 12000, wantYear: 2026, wantAge: 0, wantKmPerYear: 12000},
		{name: "one year old", modelYear: 2025, mileage: 12000, wantYear: 2025, wantAge: 1, wantKmPerYear: 12000},
		{name: "six years old", modelYear: 2020, mileage: 90000, wantYear: 2020, wantAge: 6, wantKmPerYear: 15000},
		{name: "missing year defaults to current", modelYear: 0, mileage: 500, wantYear: 2026, wantAge: 0, wantKmPerYear: 500},
		{name: "zero mileage", modelYear: 2010, mileage: 0, wantYear: 2010, wantAge: 16, wantKmPerYear: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sampleRecord()
			rec.ModelYear = tt.modelYear
			rec.Mileage = tt.mileage

			year, age, kmPerYear := DerivedFeatures(rec, 2026)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantAge, age)
			assert.InDelta(t, tt.wantKmPerYear, kmPerYear, 1e-9)
		})
	}
}

func TestAssembleFeatures_CoversDefaultOrder(t *testing.T) {
	features := AssembleFeatures(sampleRecord(), 2026)

	require.Len(t, features, len(DefaultFeatureOrder))
	for _, name := range DefaultFeatureOrder {
		assert.Contains(t, features, name)
	}
	assert.Equal(t, 6, features[FeatureVehicleAge])
	assert.InDelta(t, 12500.0, features[FeatureMileagePerYear], 1e-9)
	assert.Equal(t, 14, features[FeatureOriginalParts])
	assert.Equal(t, 0.0, features[FeatureDamageScore])
}

func TestOrderFeatures_DefaultOrder(t *testing.T) {
	row := OrderFeatures(AssembleFeatures(sampleRecord(), 2026), nil)

	require.Len(t, row, len(DefaultFeatureOrder))
	assert.Equal(t, "BMW", row[0])
	assert.Equal(t, 75000.0, row[9])
	assert.Equal(t, 2020, row[10])
	assert.Equal(t, 0, row[len(row)-1])
}

func TestOrderFeatures_MetadataOrderWithPlaceholders(t *testing.T) {
	order := []string{FeatureMileagePerYear, "doors", FeatureBrand}

	row := OrderFeatures(AssembleFeatures(sampleRecord(), 2026), order)

	assert.Equal(t, []any{12500.0, "", "BMW"}, row)
}

func TestUnknownFeatures(t *testing.T) {
	assert.Empty(t, UnknownFeatures(DefaultFeatureOrder))
	assert.Empty(t, UnknownFeatures(nil))
	assert.Equal(t, []string{"doors", "engine_code"}, UnknownFeatures([]string{FeatureBrand, "doors", "engine_code"}))
}
