//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"bottle-gate/internal/domain/entity"
)

// LabelDetector заглушка без OpenCV.
type LabelDetector struct {
	ThresholdWindow int
	ThresholdOffset float32
	EpsilonRatio    float64
}

// NewLabelDetector создаёт детектор-заглушку (без OpenCV).
func NewLabelDetector() *LabelDetector {
	return &LabelDetector{
		ThresholdWindow: 11,
		ThresholdOffset: 5,
		EpsilonRatio:    0.1,
	}
}

// Classify возвращает ошибку, если сборка без тега gocv.
func (d *LabelDetector) Classify(ctx context.Context, frame []byte) (*entity.Classification, error) {
	_ = ctx
	_ = frame
	return nil, errors.New("gocv build tag is not enabled")
}

// Overlay возвращает ошибку, если сборка без тега gocv.
func (d *LabelDetector) Overlay() ([]byte, error) {
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не освобождает в заглушке.
func (d *LabelDetector) Close() error {
	return nil
}
