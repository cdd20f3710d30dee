package entity

import "errors"

// Standard domain errors
var (
	ErrModelNotLoaded     = errors.New("model not loaded")
	ErrModelFileNotFound  = errors.New("model file not found")
	ErrDatasetNotFound    = errors.New("dataset file not found")
	ErrOptionsUnavailable = errors.New("options not available")
	ErrInvalidInput       = errors.New("invalid request parameters")
	ErrPredictionFailed   = errors.New("prediction failed")
)
