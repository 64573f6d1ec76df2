package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerTrackerEmitsOrderedEvents(t *testing.T) {
	var tr PointerTracker

	assert.Empty(t, tr.Sample(nil, 10, 10, false))

	assert.Equal(t, []Event{{Kind: PointerDown, X: 10, Y: 10}},
		tr.Sample(nil, 10, 10, true))

	assert.Equal(t, []Event{{Kind: PointerMove, X: 20, Y: 15}},
		tr.Sample(nil, 20, 15, true))

	assert.Equal(t, []Event{
		{Kind: PointerMove, X: 25, Y: 15},
		{Kind: PointerUp},
	}, tr.Sample(nil, 25, 15, false))

	assert.Empty(t, tr.Sample(nil, 25, 15, false))
}

func TestPointerTrackerFirstSampleHasNoMove(t *testing.T) {
	var tr PointerTracker

	assert.Equal(t, []Event{{Kind: PointerDown, X: 3, Y: 4}},
		tr.Sample(nil, 3, 4, true))
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "pointer-down", PointerDown.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}
