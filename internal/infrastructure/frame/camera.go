//go:build gocv
// +build gocv

package frame

import (
	"context"
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"bottle-gate/internal/domain/port"
)

// CameraSource снимает кадры с устройства захвата.
type CameraSource struct {
	cap *gocv.VideoCapture
}

// OpenCamera открывает устройство захвата по номеру.
func OpenCamera(deviceID int) (*CameraSource, error) {
	device, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", deviceID, err)
	}
	return &CameraSource{cap: device}, nil
}

// NextFrame снимает кадр и кодирует его в JPEG
func (s *CameraSource) NextFrame(ctx context.Context) ([]byte, error) {
	_ = ctx

	img := gocv.NewMat()
	defer img.Close()

	if ok := s.cap.Read(&img); !ok || img.Empty() {
		return nil, errors.New("camera returned no frame")
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, img)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	return append([]byte(nil), buf.GetBytes()...), nil
}

// Close освобождает устройство захвата
func (s *CameraSource) Close() error {
	return s.cap.Close()
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*CameraSource)(nil)
