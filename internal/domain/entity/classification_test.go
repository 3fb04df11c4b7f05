package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelCandidateQualifies(t *testing.T) {
	c := LabelCandidate{Vertices: 4, Area: 10000}
	require.True(t, c.Qualifies())
}

func TestLabelCandidateAreaBounds(t *testing.T) {
	// Диапазон строгий: граничные значения отбрасываются
	require.False(t, LabelCandidate{Vertices: 4, Area: 1000}.Qualifies())
	require.False(t, LabelCandidate{Vertices: 4, Area: 20000}.Qualifies())
	require.True(t, LabelCandidate{Vertices: 4, Area: 1001}.Qualifies())
	require.True(t, LabelCandidate{Vertices: 4, Area: 19999}.Qualifies())
}

func TestLabelCandidateVertices(t *testing.T) {
	require.False(t, LabelCandidate{Vertices: 3, Area: 10000}.Qualifies())
	require.False(t, LabelCandidate{Vertices: 5, Area: 10000}.Qualifies())
}

func TestClassificationLabelFound(t *testing.T) {
	present := &Classification{Verdict: LabelPresent}
	missing := &Classification{Verdict: LabelMissing}
	require.True(t, present.LabelFound())
	require.False(t, missing.LabelFound())
}
