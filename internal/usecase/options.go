package usecase

import (
	"maps"
	"slices"

	"carprice-api/internal/domain/entity"
)

type stringSet map[string]struct{}

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) sorted() []string {
	out := slices.Sorted(maps.Keys(s))
	if out == nil {
		return []string{}
	}
	return out
}

// BuildOptionsIndex derives the dropdown choices from the dataset rows.
// Missing (empty) values are dropped.
func BuildOptionsIndex(rows []entity.DatasetRow) *entity.OptionsIndex {
	brands := stringSet{}
	fuelTypes := stringSet{}
	transmissions := stringSet{}
	bodyTypes := stringSet{}
	colors := stringSet{}
	drivetrains := stringSet{}
	provinces := stringSet{}

	modelsByBrand := map[string]stringSet{}
	seriesByModel := map[string]stringSet{}

	for _, r := range rows {
		brands.add(r.Brand)
		fuelTypes.add(r.FuelType)
		transmissions.add(r.Transmission)
		bodyTypes.add(r.BodyType)
		colors.add(r.Color)
		drivetrains.add(r.Drivetrain)
		provinces.add(r.Province)

		if r.Brand != "" {
			if modelsByBrand[r.Brand] == nil {
				modelsByBrand[r.Brand] = stringSet{}
			}
			modelsByBrand[r.Brand].add(r.Model)
		}

		// keyed by model only: series of same-named models from different
		// brands end up in one list
		if r.Model != "" && r.Series != "" {
			if seriesByModel[r.Model] == nil {
				seriesByModel[r.Model] = stringSet{}
			}
			seriesByModel[r.Model].add(r.Series)
		}
	}

	idx := &entity.OptionsIndex{
		Brands:        brands.sorted(),
		FuelTypes:     fuelTypes.sorted(),
		Transmissions: transmissions.sorted(),
		BodyTypes:     bodyTypes.sorted(),
		Colors:        colors.sorted(),
		Drivetrains:   drivetrains.sorted(),
		Provinces:     provinces.sorted(),
		ModelsByBrand: make(map[string][]string, len(modelsByBrand)),
		SeriesByModel: make(map[string][]string, len(seriesByModel)),
	}
	for _, brand := range idx.Brands {
		idx.ModelsByBrand[brand] = modelsByBrand[brand].sorted()
	}
	for model, series := range seriesByModel {
		idx.SeriesByModel[model] = series.sorted()
	}
	return idx
}
