package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowerMovesAFifthOfTheGap(t *testing.T) {
	var f Follower

	settled := f.Step(10)

	assert.False(t, settled)
	assert.InDelta(t, 2.0, f.Value(), 1e-9)

	f.Step(10)
	assert.InDelta(t, 3.6, f.Value(), 1e-9)
}

func TestFollowerSettles(t *testing.T) {
	var f Follower

	steps := 0
	for !f.Step(25) {
		steps++

		if steps > 100 {
			t.Fatal("follower never settled")
		}
	}

	assert.Equal(t, 25.0, f.Value())
}

func TestFollowerSnap(t *testing.T) {
	var f Follower

	f.Snap(12.34)

	assert.True(t, f.Step(12.34))
	assert.Equal(t, 12.34, f.Value())
}
