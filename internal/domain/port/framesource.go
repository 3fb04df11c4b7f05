package port

import "context"

// FrameSource интерфейс источника кадров
type FrameSource interface {
	// NextFrame возвращает кадр текущего цикла.
	// Размеры кадров в пределах одного запуска не меняются.
	NextFrame(ctx context.Context) ([]byte, error)
}
