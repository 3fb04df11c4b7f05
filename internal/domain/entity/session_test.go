package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionStateSameSessionSkipped(t *testing.T) {
	s := SessionState{LastProcessed: 3}
	require.False(t, s.ShouldProcess(3))
}

func TestSessionStateNewSessionProcessed(t *testing.T) {
	s := SessionState{LastProcessed: 3}
	require.True(t, s.ShouldProcess(4))
	require.Equal(t, SessionState{LastProcessed: 4}, s.MarkProcessed(4))
}

func TestSessionStateWrap(t *testing.T) {
	s := SessionState{LastProcessed: 4}
	require.True(t, s.ShouldProcess(5))
	// На значении переполнения сохраняется ноль, а не сам id
	require.Equal(t, SessionState{LastProcessed: 0}, s.MarkProcessed(5))
}

func TestSessionStateZeroCollision(t *testing.T) {
	// Начальное состояние неотличимо от сессии 0 после переполнения:
	// настоящая сессия 0 после старта не обрабатывается
	s := SessionState{}
	require.False(t, s.ShouldProcess(0))
}
