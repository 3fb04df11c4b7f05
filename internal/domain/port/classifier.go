package port

import (
	"context"

	"bottle-gate/internal/domain/entity"
)

// LabelClassifier интерфейс классификатора этикеток
type LabelClassifier interface {
	// Classify анализирует кадр и возвращает вердикт
	Classify(ctx context.Context, frame []byte) (*entity.Classification, error)

	// Overlay возвращает кадр с подсветкой найденных этикеток.
	// Буфер диагностический, на решения цикла не влияет.
	Overlay() ([]byte, error)
}
