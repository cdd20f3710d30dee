package api

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"carprice-api/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// partCountAliases maps the ASCII spelling of each part condition key to the
// Turkish spelling used by the model. The Turkish key wins when a body
// carries both.
var partCountAliases = map[string]string{
	"orjinal_parca_sayisi":      "orjinal_parça_sayısı",
	"lokal_boyali_parca_sayisi": "lokal_boyalı_parça_sayısı",
	"boyali_parca_sayisi":       "boyalı_parça_sayısı",
	"degisen_parca_sayisi":      "değişen_parça_sayısı",
}

type PredictRequest struct {
	Marka     string `json:"marka" validate:"required"`
	Model     string `json:"model" validate:"required"`
	Seri      string `json:"seri" validate:"required"`
	YakitTuru string `json:"yakitTuru" validate:"required"`
	VitesTipi string `json:"vitesTipi" validate:"required"`
	KasaTipi  string `json:"kasaTipi" validate:"required"`
	Renk      string `json:"renk" validate:"required"`
	CekisTipi string `json:"cekisTipi" validate:"required"`
	Il        string `json:"il" validate:"required"`

	KmTemiz         *float64 `json:"km_temiz" validate:"required,gte=0"`
	YilTemiz        *int     `json:"yil_temiz" validate:"required,gte=1990,lte=2025"`
	MotorGucuTemiz  *float64 `json:"motor_gucu_temiz" validate:"required,gte=0"`
	MotorHacmiTemiz *float64 `json:"motor_hacmi_temiz" validate:"required,gte=0"`

	// Accepted for compatibility, always recomputed.
	AracYasi *int     `json:"arac_yasi"`
	KmPerYas *float64 `json:"km_per_yas"`

	HasarSkoru float64 `json:"hasar_skoru" validate:"gte=0"`

	OrjinalParcaSayisi     int `json:"orjinal_parça_sayısı" validate:"gte=0,lte=14"`
	LokalBoyaliParcaSayisi int `json:"lokal_boyalı_parça_sayısı" validate:"gte=0,lte=14"`
	BoyaliParcaSayisi      int `json:"boyalı_parça_sayısı" validate:"gte=0,lte=14"`
	DegisenParcaSayisi     int `json:"değişen_parça_sayısı" validate:"gte=0,lte=14"`
}

// decodePredictRequest resolves the part count aliases and decodes body.
func decodePredictRequest(body []byte) (*PredictRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	resolvePartCountAliases(raw)

	canonical, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var req PredictRequest
	if err := json.Unmarshal(canonical, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func resolvePartCountAliases(raw map[string]json.RawMessage) {
	for ascii, native := range partCountAliases {
		v, ok := raw[ascii]
		if !ok {
			continue
		}
		if _, has := raw[native]; !has {
			raw[native] = v
		}
		delete(raw, ascii)
	}
}

func (r *PredictRequest) toRecord() entity.FeatureRecord {
	return entity.FeatureRecord{
		Brand:               r.Marka,
		Model:               r.Model,
		Series:              r.Seri,
		FuelType:            r.YakitTuru,
		Transmission:        r.VitesTipi,
		BodyType:            r.KasaTipi,
		Color:               r.Renk,
		Drivetrain:          r.CekisTipi,
		Province:            r.Il,
		Mileage:             deref(r.KmTemiz),
		ModelYear:           deref(r.YilTemiz),
		EnginePower:         deref(r.MotorGucuTemiz),
		EngineVolume:        deref(r.MotorHacmiTemiz),
		DamageScore:         r.HasarSkoru,
		OriginalParts:       r.OrjinalParcaSayisi,
		LocallyPaintedParts: r.LokalBoyaliParcaSayisi,
		PaintedParts:        r.BoyaliParcaSayisi,
		ReplacedParts:       r.DegisenParcaSayisi,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetail renders validator errors as "field: rule" pairs.
func validationDetail(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), rule))
	}
	return strings.Join(parts, "; ")
}
