//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"bottle-gate/internal/domain/entity"
)

// LabelDetector ищет этикетку на кадре по геометрии контуров.
type LabelDetector struct {
	ThresholdWindow int     // окно локального усреднения при бинаризации
	ThresholdOffset float32 // поправка к локальному среднему
	EpsilonRatio    float64 // допуск упрощения контура, доля периметра

	// Цветной буфер с подсветкой найденных этикеток. Живёт всё время
	// работы детектора, накапливает контуры от цикла к циклу.
	overlay gocv.Mat
}

// NewLabelDetector создаёт детектор с калибровкой линии.
func NewLabelDetector() *LabelDetector {
	return &LabelDetector{
		ThresholdWindow: 11,
		ThresholdOffset: 5,
		EpsilonRatio:    0.1,
		overlay:         gocv.NewMat(),
	}
}

// Classify анализирует кадр и возвращает вердикт.
// Бинаризация локальным средним устойчива к неравномерной засветке;
// контуры обходятся в порядке трассировки (внешние раньше вложенных),
// побеждает первый подошедший кандидат.
func (d *LabelDetector) Classify(ctx context.Context, frame []byte) (*entity.Classification, error) {
	_ = ctx

	gray, err := decodeGray(frame)
	if err != nil {
		return nil, err
	}
	defer gray.Close()

	d.ensureOverlay(frame)

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.AdaptiveThreshold(gray, &bin, 255, gocv.AdaptiveThresholdMean, gocv.ThresholdBinary, d.ThresholdWindow, d.ThresholdOffset)

	hierarchy := gocv.NewMat()
	defer hierarchy.Close()
	contours := gocv.FindContoursWithParams(bin, &hierarchy, gocv.RetrievalTree, gocv.ChainApproxNone)
	defer contours.Close()

	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)

		perimeter := gocv.ArcLength(contour, true)
		approx := gocv.ApproxPolyDP(contour, d.EpsilonRatio*perimeter, true)
		vertices := approx.Size()
		approx.Close()

		candidate := entity.LabelCandidate{
			Vertices:  vertices,
			Perimeter: perimeter,
			Area:      gocv.ContourArea(contour),
		}
		if !candidate.Qualifies() {
			continue
		}

		if !d.overlay.Empty() {
			green := color.RGBA{G: 255, A: 255}
			gocv.DrawContours(&d.overlay, contours, i, green, 10)
		}

		return &entity.Classification{Verdict: entity.LabelPresent, Candidate: &candidate}, nil
	}

	return &entity.Classification{Verdict: entity.LabelMissing}, nil
}

// Overlay возвращает буфер с подсветкой в формате JPEG.
func (d *LabelDetector) Overlay() ([]byte, error) {
	if d.overlay.Empty() {
		return nil, errors.New("no frames classified yet")
	}

	img, err := d.overlay.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Close освобождает буфер подсветки.
func (d *LabelDetector) Close() error {
	return d.overlay.Close()
}

// ensureOverlay инициализирует буфер подсветки цветной копией первого
// пригодного кадра.
func (d *LabelDetector) ensureOverlay(frame []byte) {
	if !d.overlay.Empty() {
		return
	}

	colour, err := gocv.IMDecode(frame, gocv.IMReadColor)
	if err != nil {
		return
	}
	if colour.Empty() {
		colour.Close()
		return
	}

	d.overlay.Close()
	d.overlay = colour
}

// decodeGray превращает байты кадра в серый gocv.Mat.
func decodeGray(frame []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(frame, gocv.IMReadGrayScale)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode frame")
}
