package entity

// FeatureRecord is the caller supplied description of a single vehicle.
// Derived features (vehicle age, mileage per year) are never taken from here;
// the pipeline always recomputes them.
type FeatureRecord struct {
	Brand        string `json:"marka"`
	Model        string `json:"model"`
	Series       string `json:"seri"`
	FuelType     string `json:"yakitTuru"`
	Transmission string `json:"vitesTipi"`
	BodyType     string `json:"kasaTipi"`
	Color        string `json:"renk"`
	Drivetrain   string `json:"cekisTipi"`
	Province     string `json:"il"`

	Mileage      float64 `json:"km_temiz"`
	ModelYear    int     `json:"yil_temiz"` // 0 means unknown
	EnginePower  float64 `json:"motor_gucu_temiz"`
	EngineVolume float64 `json:"motor_hacmi_temiz"`

	DamageScore float64 `json:"hasar_skoru"`

	OriginalParts       int `json:"orjinal_parça_sayısı"`
	LocallyPaintedParts int `json:"lokal_boyalı_parça_sayısı"`
	PaintedParts        int `json:"boyalı_parça_sayısı"`
	ReplacedParts       int `json:"değişen_parça_sayısı"`
}

type ModelInfo struct {
	Type    string  `json:"type"`
	R2Score float64 `json:"r2_score"`
	MAPE    float64 `json:"mape"`
}

type PredictionResult struct {
	PredictedPrice          float64   `json:"predicted_price"`
	PredictedPriceFormatted string    `json:"predicted_price_formatted"`
	ConfidenceLow           float64   `json:"confidence_low"`
	ConfidenceHigh          float64   `json:"confidence_high"`
	ModelInfo               ModelInfo `json:"model_info"`
}
