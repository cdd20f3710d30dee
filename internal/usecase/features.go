package usecase

import "carprice-api/internal/domain/entity"

// Feature names as they appear in the training data.
const (
	FeatureBrand               = "marka"
	FeatureModel               = "model"
	FeatureSeries              = "seri"
	FeatureFuelType            = "yakitTuru"
	FeatureTransmission        = "vitesTipi"
	FeatureBodyType            = "kasaTipi"
	FeatureColor               = "renk"
	FeatureDrivetrain          = "cekisTipi"
	FeatureProvince            = "il"
	FeatureMileage             = "km_temiz"
	FeatureModelYear           = "yil_temiz"
	FeatureEnginePower         = "motor_gucu_temiz"
	FeatureEngineVolume        = "motor_hacmi_temiz"
	FeatureVehicleAge          = "arac_yasi"
	FeatureMileagePerYear      = "km_per_yas"
	FeatureDamageScore         = "hasar_skoru"
	FeatureOriginalParts       = "orjinal_parça_sayısı"
	FeatureLocallyPaintedParts = "lokal_boyalı_parça_sayısı"
	FeaturePaintedParts        = "boyalı_parça_sayısı"
	FeatureReplacedParts       = "değişen_parça_sayısı"
)

// DefaultFeatureOrder is used when the model metadata does not record one.
var DefaultFeatureOrder = []string{
	FeatureBrand,
	FeatureModel,
	FeatureSeries,
	FeatureFuelType,
	FeatureTransmission,
	FeatureBodyType,
	FeatureColor,
	FeatureDrivetrain,
	FeatureProvince,
	FeatureMileage,
	FeatureModelYear,
	FeatureEnginePower,
	FeatureEngineVolume,
	FeatureVehicleAge,
	FeatureMileagePerYear,
	FeatureDamageScore,
	FeatureOriginalParts,
	FeatureLocallyPaintedParts,
	FeaturePaintedParts,
	FeatureReplacedParts,
}

// DerivedFeatures computes vehicle age and mileage per year relative to
// currentYear. A zero model year is treated as the current year.
func DerivedFeatures(rec entity.FeatureRecord, currentYear int) (modelYear, age int, mileagePerYear float64) {
	modelYear = rec.ModelYear
	if modelYear == 0 {
		modelYear = currentYear
	}
	age = currentYear - modelYear
	mileagePerYear = rec.Mileage / float64(max(age, 1))
	return modelYear, age, mileagePerYear
}

// AssembleFeatures builds the full named feature map for rec.
func AssembleFeatures(rec entity.FeatureRecord, currentYear int) map[string]any {
	year, age, kmPerYear := DerivedFeatures(rec, currentYear)

	return map[string]any{
		FeatureBrand:               rec.Brand,
		FeatureModel:               rec.Model,
		FeatureSeries:              rec.Series,
		FeatureFuelType:            rec.FuelType,
		FeatureTransmission:        rec.Transmission,
		FeatureBodyType:            rec.BodyType,
		FeatureColor:               rec.Color,
		FeatureDrivetrain:          rec.Drivetrain,
		FeatureProvince:            rec.Province,
		FeatureMileage:             rec.Mileage,
		FeatureModelYear:           year,
		FeatureEnginePower:         rec.EnginePower,
		FeatureEngineVolume:        rec.EngineVolume,
		FeatureVehicleAge:          age,
		FeatureMileagePerYear:      kmPerYear,
		FeatureDamageScore:         rec.DamageScore,
		FeatureOriginalParts:       rec.OriginalParts,
		FeatureLocallyPaintedParts: rec.LocallyPaintedParts,
		FeaturePaintedParts:        rec.PaintedParts,
		FeatureReplacedParts:       rec.ReplacedParts,
	}
}

// OrderFeatures lays features out in order. Names without a value become
// empty strings so that a metadata/schema mismatch degrades instead of failing.
func OrderFeatures(features map[string]any, order []string) []any {
	if len(order) == 0 {
		order = DefaultFeatureOrder
	}
	row := make([]any, len(order))
	for i, name := range order {
		v, ok := features[name]
		if !ok {
			v = ""
		}
		row[i] = v
	}
	return row
}

// UnknownFeatures lists the names in order that AssembleFeatures never produces.
func UnknownFeatures(order []string) []string {
	known := make(map[string]struct{}, len(DefaultFeatureOrder))
	for _, name := range DefaultFeatureOrder {
		known[name] = struct{}{}
	}
	var unknown []string
	for _, name := range order {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
