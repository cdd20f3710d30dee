package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"carprice-api/internal/domain/entity"
)

// Column names of the cleaned dataset.
const (
	colBrand        = "marka"
	colModel        = "model"
	colSeries       = "seri"
	colFuelType     = "yakitTuru"
	colTransmission = "vitesTipi"
	colBodyType     = "kasaTipi"
	colColor        = "renk"
	colDrivetrain   = "cekisTipi"
	colProvince     = "il"
)

var requiredColumns = []string{
	colBrand, colModel, colSeries, colFuelType, colTransmission,
	colBodyType, colColor, colDrivetrain, colProvince,
}

// Cells holding one of these are treated as missing, like pandas does by default.
var missingTokens = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "#N/A": {}, "NaN": {}, "nan": {},
	"-NaN": {}, "-nan": {}, "null": {}, "NULL": {}, "None": {}, "<NA>": {},
}

// CSVDataset reads listing rows from a CSV file with a header line.
type CSVDataset struct {
	filePath string
}

func NewCSVDataset(filePath string) *CSVDataset {
	return &CSVDataset{filePath: filePath}
}

func (d *CSVDataset) Rows(ctx context.Context) ([]entity.DatasetRow, error) {
	file, err := os.Open(d.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", entity.ErrDatasetNotFound, d.filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	columns, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []entity.DatasetRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse dataset: %w", err)
		}

		cell := func(name string) string {
			v := record[columns[name]]
			if _, missing := missingTokens[v]; missing {
				return ""
			}
			return v
		}

		rows = append(rows, entity.DatasetRow{
			Brand:        cell(colBrand),
			Model:        cell(colModel),
			Series:       cell(colSeries),
			FuelType:     cell(colFuelType),
			Transmission: cell(colTransmission),
			BodyType:     cell(colBodyType),
			Color:        cell(colColor),
			Drivetrain:   cell(colDrivetrain),
			Province:     cell(colProvince),
		})
	}

	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[name] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}
