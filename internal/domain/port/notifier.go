package port

import "context"

// RejectNotifier интерфейс оповещения оператора об отбраковке
type RejectNotifier interface {
	// NotifyReject сообщает об отбракованной бутылке; snapshot —
	// кадр с подсветкой, может быть пустым
	NotifyReject(ctx context.Context, sessionID int64, snapshot []byte) error
}
