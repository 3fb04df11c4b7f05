package opc

import (
	"context"
	"fmt"
	"sync"

	"bottle-gate/internal/domain/port"
)

// BoolWrite одна запись булева узла, зафиксированная MemoryLink
type BoolWrite struct {
	NodeID string
	Value  bool
}

// MemoryLink in-memory контроллер для тестов и стендовой отладки.
// Значения узлов задаются очередями: каждое чтение снимает голову
// очереди, последнее значение остаётся закреплённым.
type MemoryLink struct {
	mu     sync.Mutex
	bools  map[string][]bool
	ints   map[string][]int64
	writes []BoolWrite
}

// NewMemoryLink создаёт новый in-memory контроллер
func NewMemoryLink() *MemoryLink {
	return &MemoryLink{
		bools: make(map[string][]bool),
		ints:  make(map[string][]int64),
	}
}

// SetBool закрепляет за узлом одно постоянное значение
func (l *MemoryLink) SetBool(nodeID string, value bool) {
	l.mu.Lock()
	l.bools[nodeID] = []bool{value}
	l.mu.Unlock()
}

// QueueBool задаёт последовательность значений узла по опросам
func (l *MemoryLink) QueueBool(nodeID string, values ...bool) {
	l.mu.Lock()
	l.bools[nodeID] = append(l.bools[nodeID], values...)
	l.mu.Unlock()
}

// SetInt закрепляет за узлом одно постоянное значение
func (l *MemoryLink) SetInt(nodeID string, value int64) {
	l.mu.Lock()
	l.ints[nodeID] = []int64{value}
	l.mu.Unlock()
}

// QueueInt задаёт последовательность значений узла по опросам
func (l *MemoryLink) QueueInt(nodeID string, values ...int64) {
	l.mu.Lock()
	l.ints[nodeID] = append(l.ints[nodeID], values...)
	l.mu.Unlock()
}

// ReadBool читает булев узел, ошибка если узел не задан
func (l *MemoryLink) ReadBool(ctx context.Context, nodeID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q, ok := l.bools[nodeID]
	if !ok || len(q) == 0 {
		return false, fmt.Errorf("bool node %q is not defined", nodeID)
	}

	v := q[0]
	if len(q) > 1 {
		l.bools[nodeID] = q[1:]
	}
	return v, nil
}

// ReadInt читает целочисленный узел, ошибка если узел не задан
func (l *MemoryLink) ReadInt(ctx context.Context, nodeID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q, ok := l.ints[nodeID]
	if !ok || len(q) == 0 {
		return 0, fmt.Errorf("int node %q is not defined", nodeID)
	}

	v := q[0]
	if len(q) > 1 {
		l.ints[nodeID] = q[1:]
	}
	return v, nil
}

// WriteBool фиксирует запись и закрепляет значение за узлом
func (l *MemoryLink) WriteBool(ctx context.Context, nodeID string, value bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writes = append(l.writes, BoolWrite{NodeID: nodeID, Value: value})
	l.bools[nodeID] = []bool{value}
	return nil
}

// Writes возвращает все записи в порядке выполнения
func (l *MemoryLink) Writes() []BoolWrite {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]BoolWrite, len(l.writes))
	copy(out, l.writes)
	return out
}

// Close ничего не разрывает — соединения нет
func (l *MemoryLink) Close(ctx context.Context) error {
	return nil
}

// Проверка реализации интерфейса
var _ port.ControllerLink = (*MemoryLink)(nil)
