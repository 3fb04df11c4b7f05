package port

import "context"

// ControllerLink интерфейс связи с контроллером линии.
// Каждый вызов — синхронный обход по единственной сессии протокола.
type ControllerLink interface {
	// ReadBool читает булев узел контроллера
	ReadBool(ctx context.Context, nodeID string) (bool, error)

	// ReadInt читает целочисленный узел контроллера
	ReadInt(ctx context.Context, nodeID string) (int64, error)

	// WriteBool записывает булев узел контроллера
	WriteBool(ctx context.Context, nodeID string, value bool) error

	// Close разрывает соединение с контроллером
	Close(ctx context.Context) error
}
