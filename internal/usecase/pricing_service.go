package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"carprice-api/internal/domain/entity"
	"carprice-api/internal/domain/repository"
)

// PricingService owns everything loaded at startup: the model, its metadata
// and the options index. After the Load calls return it is read-only and
// safe to share between request handlers.
type PricingService struct {
	model       repository.Regressor
	meta        entity.ModelMetadata
	options     *entity.OptionsIndex
	datasetRows int

	cache     repository.PredictionCache
	telemetry *Telemetry
	now       func() time.Time
}

type Option func(*PricingService)

// WithClock replaces the wall clock used to derive the vehicle age.
func WithClock(now func() time.Time) Option {
	return func(s *PricingService) { s.now = now }
}

// WithCache memoizes predictions. A nil cache disables caching.
func WithCache(cache repository.PredictionCache) Option {
	return func(s *PricingService) { s.cache = cache }
}

func WithTelemetry(t *Telemetry) Option {
	return func(s *PricingService) { s.telemetry = t }
}

func NewPricingService(opts ...Option) *PricingService {
	s := &PricingService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.telemetry == nil {
		s.telemetry = NewTelemetry()
	}
	return s
}

// LoadModel loads the model and its metadata. On failure the service stays
// without a model and Predict keeps returning ErrModelNotLoaded.
func (s *PricingService) LoadModel(ctx context.Context, loader repository.ModelLoader) error {
	model, meta, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("model load failed: %w", err)
	}

	if unknown := UnknownFeatures(meta.Features); len(unknown) > 0 {
		log.Printf("[MODEL] Warning: metadata lists features the pipeline does not produce, they will be sent as empty strings: %v", unknown)
	}

	s.model = model
	s.meta = meta
	return nil
}

// LoadOptions reads the dataset and builds the options index. Nothing is
// kept when reading fails.
func (s *PricingService) LoadOptions(ctx context.Context, source repository.DatasetSource) error {
	rows, err := source.Rows(ctx)
	if err != nil {
		return fmt.Errorf("dataset load failed: %w", err)
	}
	s.options = BuildOptionsIndex(rows)
	s.datasetRows = len(rows)
	return nil
}

func (s *PricingService) IsModelLoaded() bool {
	return s.model != nil
}

// DatasetSize is the number of rows the options index was built from.
func (s *PricingService) DatasetSize() int {
	return s.datasetRows
}

func (s *PricingService) Telemetry() *Telemetry {
	return s.telemetry
}

func (s *PricingService) Options() (*entity.OptionsIndex, error) {
	if s.options == nil {
		return nil, entity.ErrOptionsUnavailable
	}
	return s.options, nil
}

func (s *PricingService) ModelsForBrand(brand string) []string {
	return s.options.ModelsForBrand(brand)
}

func (s *PricingService) SeriesForModel(model string) []string {
	return s.options.SeriesForModel(model)
}

// Predict estimates the price of the vehicle described by rec.
func (s *PricingService) Predict(ctx context.Context, rec entity.FeatureRecord) (*entity.PredictionResult, error) {
	if s.model == nil {
		return nil, entity.ErrModelNotLoaded
	}

	start := time.Now()
	defer s.telemetry.Latency.UpdateSince(start)
	s.telemetry.Predictions.Inc(1)

	currentYear := s.now().Year()

	var key string
	if s.cache != nil {
		key = cacheKey(rec, currentYear)
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("[CACHE] Warning: lookup failed: %v", err)
		}
		if ok {
			s.telemetry.CacheHits.Inc(1)
			return cached, nil
		}
		s.telemetry.CacheMisses.Inc(1)
	}

	result, err := s.predict(rec, currentYear)
	if err != nil {
		s.telemetry.PredictionFailures.Inc(1)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			log.Printf("[CACHE] Warning: store failed: %v", err)
		}
	}
	return result, nil
}

func (s *PricingService) predict(rec entity.FeatureRecord, currentYear int) (*entity.PredictionResult, error) {
	row := OrderFeatures(AssembleFeatures(rec, currentYear), s.meta.Features)

	raw, err := s.model.Predict(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrPredictionFailed, err)
	}

	price := raw
	if s.meta.LogTarget() {
		price = math.Exp(raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: model returned a non-finite price (raw %v)", entity.ErrPredictionFailed, raw)
	}

	mape := s.meta.MAPE()
	low, high := ConfidenceBand(price, mape)

	return &entity.PredictionResult{
		PredictedPrice:          price,
		PredictedPriceFormatted: FormatPrice(price),
		ConfidenceLow:           low,
		ConfidenceHigh:          high,
		ModelInfo: entity.ModelInfo{
			Type:    s.meta.Type(),
			R2Score: s.meta.R2(),
			MAPE:    mape,
		},
	}, nil
}

// cacheKey is stable for a record within a calendar year, since the
// derived vehicle age only changes with the year.
func cacheKey(rec entity.FeatureRecord, currentYear int) string {
	payload, _ := json.Marshal(rec)
	h := sha256.New()
	h.Write(payload)
	h.Write([]byte(strconv.Itoa(currentYear)))
	return "prediction:" + hex.EncodeToString(h.Sum(nil))
}
