package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestartResetsToForcedPrefix(t *testing.T) {
	pb := ParseSlice([][]int{{1}, {-1, 2}, {-2, 3, 4}, {-3, -4}})
	s, err := New(pb, nil)
	require.NoError(t, err)

	s.assigned = s.forced
	s.trail[s.assigned] = 2
	s.assigned++
	s.setMfalse(-2, falsed)

	before := s.forced
	s.restart()
	assert.Equal(t, before, s.assigned)
	assert.Equal(t, s.forced, s.processed)
	assert.Equal(t, 1, s.Stats.NbRestarts)
}

func TestReduceDBDropsSatisfiedLemmasAboveThreshold(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {3, 4}})
	s, err := New(pb, nil)
	require.NoError(t, err)

	s.model[1] = 1
	s.model[2] = 1
	s.model[3] = 1
	s.model[4] = 1

	keptOff, err := s.addClause([]int32{1, 3}, false)
	require.NoError(t, err)
	_ = keptOff
	droppedBefore := s.Stats.NbDeleted

	require.NoError(t, s.reduceDB(1))
	assert.Equal(t, droppedBefore+1, s.Stats.NbDeleted)
}
