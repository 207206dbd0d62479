package cells_test

import (
	"testing"

	"github.com/celljam/celljam/cells"
	"github.com/stretchr/testify/assert"
)

func TestListenersFireInAdditionOrder(t *testing.T) {
	a := cells.New(0)
	var order []string
	a.AddListener(cells.ListenFunc(func(cells.Observable) { order = append(order, "first") }))
	a.AddListener(cells.ListenFunc(func(cells.Observable) { order = append(order, "second") }))
	a.AddListener(cells.ListenFunc(func(cells.Observable) { order = append(order, "third") }))

	a.SetValue(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestAddListenerIsIdempotent(t *testing.T) {
	a := cells.New(0)
	fired := 0
	l := cells.ListenFunc(func(cells.Observable) { fired++ })
	a.AddListener(l)
	a.AddListener(l)

	a.SetValue(1)
	assert.Equal(t, 1, fired)
}

func TestRemoveListener(t *testing.T) {
	a := cells.New(0)
	fired := 0
	l := cells.ListenFunc(func(cells.Observable) { fired++ })
	a.AddListener(l)

	a.SetValue(1)
	assert.Equal(t, 1, fired)

	a.RemoveListener(l)
	a.SetValue(2)
	assert.Equal(t, 1, fired)
}

func TestRemoveUnknownListenerIsNoop(t *testing.T) {
	a := cells.New(0)
	a.RemoveListener(cells.ListenFunc(func(cells.Observable) {}))
	a.SetValue(1)
	assert.Equal(t, 1, a.Value())
}

func TestListenerReceivesSource(t *testing.T) {
	a := cells.New(0)
	var got cells.Observable
	a.AddListener(cells.ListenFunc(func(src cells.Observable) { got = src }))

	a.SetValue(1)
	assert.Same(t, a, got)
}

func TestOnceListenerIsSweptAfterItsRound(t *testing.T) {
	a := cells.New(0)
	onceFired := 0
	funcFired := 0
	a.AddListener(cells.ListenOnce(func(cells.Observable) { onceFired++ }))
	a.AddListener(cells.ListenFunc(func(cells.Observable) { funcFired++ }))

	a.SetValue(1)
	assert.Equal(t, 1, onceFired)
	assert.Equal(t, 1, funcFired)

	// the once listener was dropped after the round it fired in
	a.SetValue(2)
	assert.Equal(t, 1, onceFired)
	assert.Equal(t, 2, funcFired)
}

func TestListenerAddedDuringRoundFiresNextRound(t *testing.T) {
	a := cells.New(0)
	lateFired := 0
	late := cells.ListenFunc(func(cells.Observable) { lateFired++ })
	a.AddListener(cells.ListenFunc(func(cells.Observable) {
		a.AddListener(late)
	}))

	a.SetValue(1)
	assert.Equal(t, 0, lateFired)

	a.SetValue(2)
	assert.Equal(t, 1, lateFired)
}

func TestListenerRemovedDuringRoundStillFiresFromSnapshot(t *testing.T) {
	a := cells.New(0)
	secondFired := 0
	second := cells.ListenFunc(func(cells.Observable) { secondFired++ })
	a.AddListener(cells.ListenFunc(func(cells.Observable) {
		a.RemoveListener(second)
	}))
	a.AddListener(second)

	// the round runs over a snapshot taken before the removal
	a.SetValue(1)
	assert.Equal(t, 1, secondFired)

	a.SetValue(2)
	assert.Equal(t, 1, secondFired)
}

func TestListenerOnComputedSeesRecomputeChanges(t *testing.T) {
	a := cells.New(1)
	b := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) * 10
	})
	assert.Equal(t, 10, b.Value())

	fired := 0
	b.AddListener(cells.ListenFunc(func(cells.Observable) { fired++ }))

	a.SetValue(2)
	// the invalidation round
	assert.Equal(t, 1, fired)
	// the recompute round, value changed
	assert.Equal(t, 20, b.Value())
	assert.Equal(t, 2, fired)
}
