//go:build !gocv
// +build !gocv

package frame

import (
	"context"
	"errors"
)

// CameraSource заглушка без OpenCV.
type CameraSource struct{}

// OpenCamera возвращает ошибку, если сборка без тега gocv.
func OpenCamera(deviceID int) (*CameraSource, error) {
	_ = deviceID
	return nil, errors.New("gocv build tag is not enabled")
}

// NextFrame возвращает ошибку, если сборка без тега gocv.
func (s *CameraSource) NextFrame(ctx context.Context) ([]byte, error) {
	_ = ctx
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не освобождает в заглушке.
func (s *CameraSource) Close() error {
	return nil
}
