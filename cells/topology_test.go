package cells_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/celljam/celljam/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologyDropAbaUpdates(t *testing.T) {
	//     A
	//   / |
	//  B  | <- Looks like a flag doesn't it? :D
	//   \ |
	//     C
	//     |
	//     D
	a := cells.New(2)
	b := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) - 1
	})
	c := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) + b.Use(ctx)
	})
	callCount := 0
	d := cells.Computed(func(ctx *cells.Context) string {
		callCount++
		return fmt.Sprintf("d: %d", c.Use(ctx))
	})

	// Trigger read
	assert.Equal(t, "d: 3", d.Value())
	assert.Equal(t, 1, callCount)

	a.SetValue(4)
	assert.Equal(t, "d: 7", d.Value())
	assert.Equal(t, 2, callCount)
}

func TestShouldOnlyUpdateEveryCellOnceDiamond(t *testing.T) {
	// In this scenario "D" should only update once when "A" receives
	// an update. This is sometimes referred to as the "diamond" scenario.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D

	a := cells.New("a")
	b := cells.Computed(func(ctx *cells.Context) string {
		return a.Use(ctx)
	})
	c := cells.Computed(func(ctx *cells.Context) string {
		return a.Use(ctx)
	})

	callCount := 0
	d := cells.Computed(func(ctx *cells.Context) string {
		callCount++
		return b.Use(ctx) + " " + c.Use(ctx)
	})

	assert.Equal(t, "a a", d.Value())
	assert.Equal(t, 1, callCount)
	callCount = 0

	a.SetValue("aa")
	assert.Equal(t, "aa aa", d.Value())
	assert.Equal(t, 1, callCount)
}

func TestShouldOnlyUpdateEveryCellOnceDiamondTail(t *testing.T) {
	// "E" would update twice if the push reached it along both arms.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	//     |
	//     E

	a := cells.New("a")
	b := cells.Computed(func(ctx *cells.Context) string {
		return a.Use(ctx)
	})
	c := cells.Computed(func(ctx *cells.Context) string {
		return a.Use(ctx)
	})
	d := cells.Computed(func(ctx *cells.Context) string {
		return b.Use(ctx) + " " + c.Use(ctx)
	})

	eCallCount := 0
	e := cells.Computed(func(ctx *cells.Context) string {
		eCallCount++
		return d.Use(ctx)
	})

	assert.Equal(t, "a a", e.Value())
	assert.Equal(t, 1, eCallCount)

	a.SetValue("aa")
	assert.Equal(t, "aa aa", e.Value())
	assert.Equal(t, 2, eCallCount)
}

func TestDiamondNotifiesLeafListenerOncePerWrite(t *testing.T) {
	// The second arm finds "D" already invalidated and stops, so
	// a listener on "D" sees one round per write, not two.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	a := cells.New(1)
	b := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) * 2
	})
	c := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) * 3
	})
	d := cells.Computed(func(ctx *cells.Context) int {
		return b.Use(ctx) + c.Use(ctx)
	})

	assert.Equal(t, 5, d.Value())

	leafFires := 0
	d.AddListener(cells.ListenFunc(func(cells.Observable) { leafFires++ }))

	a.SetValue(2)
	assert.Equal(t, 1, leafFires)

	// a second write while still invalidated is absorbed entirely
	a.SetValue(3)
	assert.Equal(t, 1, leafFires)

	// the pull recomputes to a changed value, one more round
	assert.Equal(t, 15, d.Value())
	assert.Equal(t, 2, leafFires)

	a.SetValue(4)
	assert.Equal(t, 3, leafFires)
}

func TestEqualRecomputeSuppressesNotifications(t *testing.T) {
	// "B" always lands on the same value. Invalidation still travels
	// A->B->C and both recompute on the pull, but neither recompute
	// round notifies anyone because nothing changed.
	// A->B->C
	a := cells.New("a")
	bCalls := 0
	b := cells.Computed(func(ctx *cells.Context) string {
		bCalls++
		a.Use(ctx)
		return "b"
	})
	cCalls := 0
	c := cells.Computed(func(ctx *cells.Context) string {
		cCalls++
		return b.Use(ctx)
	})

	assert.Equal(t, "b", c.Value())
	assert.Equal(t, 1, bCalls)
	assert.Equal(t, 1, cCalls)

	bFired, cFired := 0, 0
	b.AddListener(cells.ListenFunc(func(cells.Observable) { bFired++ }))
	c.AddListener(cells.ListenFunc(func(cells.Observable) { cFired++ }))

	a.SetValue("aa")
	// the invalidation round itself fires
	assert.Equal(t, 1, bFired)
	assert.Equal(t, 1, cFired)

	assert.Equal(t, "b", c.Value())
	assert.Equal(t, 2, bCalls)
	assert.Equal(t, 2, cCalls)
	// the recomputes landed on equal values, no second round
	assert.Equal(t, 1, bFired)
	assert.Equal(t, 1, cFired)
}

func TestShouldOnlyUpdateEveryCellOnceJaggedDiamondTails(t *testing.T) {
	// "F" and "G" would update twice if the push reached them along
	// both arms of the inner diamond.
	//     A
	//   /   \
	//  B     C
	//  |     |
	//  |     D
	//   \   /
	//     E
	//   /   \
	//  F     G

	a := cells.New("a")
	b := cells.Computed(func(ctx *cells.Context) string {
		return a.Use(ctx)
	})
	c := cells.Computed(func(ctx *cells.Context) string {
		return a.Use(ctx)
	})
	d := cells.Computed(func(ctx *cells.Context) string {
		return c.Use(ctx)
	})

	eCallCount, eTime := 0, time.Time{}
	e := cells.Computed(func(ctx *cells.Context) string {
		bV, dV := b.Use(ctx), d.Use(ctx)
		eV := bV + " " + dV
		eCallCount++
		eTime = time.Now()
		return eV
	})

	fCallCount, fTime := 0, time.Time{}
	f := cells.Computed(func(ctx *cells.Context) string {
		ev := e.Use(ctx)
		fCallCount++
		fTime = time.Now()
		return ev
	})

	gCallCount, gTime := 0, time.Time{}
	g := cells.Computed(func(ctx *cells.Context) string {
		ev := e.Use(ctx)
		gCallCount++
		gTime = time.Now()
		return ev
	})

	require.Equal(t, "a a", f.Value())
	require.Equal(t, 1, fCallCount)
	require.Equal(t, "a a", g.Value())
	require.Equal(t, 1, gCallCount)
	eCallCount, fCallCount, gCallCount = 0, 0, 0

	a.SetValue("b")
	require.Equal(t, "b b", e.Value())
	require.Equal(t, 1, eCallCount)
	require.Equal(t, "b b", f.Value())
	require.Equal(t, 1, fCallCount)
	require.Equal(t, "b b", g.Value())
	require.Equal(t, 1, gCallCount)
	eCallCount, fCallCount, gCallCount = 0, 0, 0

	a.SetValue("c")
	require.Equal(t, "c c", e.Value())
	require.Equal(t, 1, eCallCount)
	require.Equal(t, "c c", f.Value())
	require.Equal(t, 1, fCallCount)
	require.Equal(t, "c c", g.Value())
	require.Equal(t, 1, gCallCount)

	// top to bottom
	assert.True(t, eTime.Before(fTime))
	// left to right
	assert.True(t, fTime.Before(gTime))
}

func TestShouldOnlyAttachToCellsActuallyRead(t *testing.T) {
	//    *A
	//   /   \
	// *B     C <- C is never read
	a := cells.New("a")
	b := cells.Computed(func(ctx *cells.Context) string {
		return a.Use(ctx)
	})
	callCount := 0
	cells.Computed(func(ctx *cells.Context) string {
		callCount++
		return a.Use(ctx)
	})

	assert.Equal(t, "a", b.Value())
	assert.Equal(t, 0, callCount)

	a.SetValue("aa")
	assert.Equal(t, "aa", b.Value())
	assert.Equal(t, 0, callCount)
}

func TestDependencySwitchRetargetsEdges(t *testing.T) {
	// sel picks which branch is read, so the edge set follows it.
	//   sel   X   Y
	//     \   |   |
	//      \  |  /
	//       out
	sel := cells.New(true)
	x := cells.New("x")
	y := cells.New("y")
	callCount := 0
	out := cells.Computed(func(ctx *cells.Context) string {
		callCount++
		if sel.Use(ctx) {
			return x.Use(ctx)
		}
		return y.Use(ctx)
	})

	assert.Equal(t, "x", out.Value())
	assert.Equal(t, 1, callCount)
	assert.ElementsMatch(t, []cells.Observable{sel, x}, out.Dependencies())

	// the unread branch is not an edge
	y.SetValue("yy")
	assert.False(t, out.Invalidated())
	assert.Equal(t, 1, callCount)

	sel.SetValue(false)
	assert.Equal(t, "yy", out.Value())
	assert.Equal(t, 2, callCount)
	assert.ElementsMatch(t, []cells.Observable{sel, y}, out.Dependencies())

	// the dropped branch is detached
	x.SetValue("xx")
	assert.False(t, out.Invalidated())
	assert.Equal(t, 2, callCount)
}

func TestInvalidationTravelsTransitively(t *testing.T) {
	// A->B->C->D
	a := cells.New(1)
	b := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) + 1
	})
	c := cells.Computed(func(ctx *cells.Context) int {
		return b.Use(ctx) + 1
	})
	d := cells.Computed(func(ctx *cells.Context) int {
		return c.Use(ctx) + 1
	})

	assert.Equal(t, 4, d.Value())

	a.SetValue(10)
	assert.True(t, b.Invalidated())
	assert.True(t, c.Invalidated())
	assert.True(t, d.Invalidated())
	assert.Equal(t, 13, d.Value())
}

func TestPanicInOneArmLeavesSiblingConsistent(t *testing.T) {
	a := cells.New(0)
	b := cells.Computed(func(ctx *cells.Context) int {
		panic("fail")
	})
	c := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx)
	})

	assert.Panics(t, func() {
		b.Value()
	})

	a.SetValue(1)
	assert.Equal(t, 1, c.Value())
}
