package entity

// DatasetRow is one historical listing, reduced to the categorical columns
// the options index is built from. An empty string marks a missing cell.
type DatasetRow struct {
	Brand        string
	Model        string
	Series       string
	FuelType     string
	Transmission string
	BodyType     string
	Color        string
	Drivetrain   string
	Province     string
}

// OptionsIndex holds the dropdown choices derived from the dataset.
// Every list is sorted ascending and free of duplicates.
type OptionsIndex struct {
	Brands        []string            `json:"markalar"`
	ModelsByBrand map[string][]string `json:"modeller"`
	SeriesByModel map[string][]string `json:"seriler"`
	FuelTypes     []string            `json:"yakit_turleri"`
	Transmissions []string            `json:"vites_tipleri"`
	BodyTypes     []string            `json:"kasa_tipleri"`
	Colors        []string            `json:"renkler"`
	Drivetrains   []string            `json:"cekis_tipleri"`
	Provinces     []string            `json:"iller"`
}

// ModelsForBrand returns the models known for brand, or an empty slice.
func (o *OptionsIndex) ModelsForBrand(brand string) []string {
	if o == nil {
		return []string{}
	}
	if models, ok := o.ModelsByBrand[brand]; ok {
		return models
	}
	return []string{}
}

// SeriesForModel returns the series known for model, or an empty slice.
// Series are keyed by model name alone, so two brands sharing a model name
// share one series list.
func (o *OptionsIndex) SeriesForModel(model string) []string {
	if o == nil {
		return []string{}
	}
	if series, ok := o.SeriesByModel[model]; ok {
		return series
	}
	return []string{}
}
