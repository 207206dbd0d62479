// Package cells is a lazy reactive value graph. A cell holds a value
// and a binding that describes how the value is produced. Writes push
// invalidation through the graph without recomputing anything; reads
// pull, recomputing only cells whose invalidated flag is set.
//
// A graph is single threaded by contract. Cells hold no locks, take no
// atomics and must only ever be touched by the goroutine that owns
// them. Bridging to other goroutines is the caller's job, done by
// copying values out at a boundary the caller controls.
//
// Dependencies are discovered per evaluation. Only reads that go
// through Use inside a binding are tracked; calling Value directly
// inside a binding is an untracked read and creates no edge. This is a
// hard contract, not a heuristic.
package cells

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Cell is a reactive value of element type T. The zero value is not
// usable, construct with New, Computed or Stateful.
type Cell[T any] struct {
	kind     bindingKind
	value    T
	retained T
	compute  func(*Context) T
	mutate   func(*Context, T) T

	invalid    bool
	evaluating bool

	deps      mapset.Set[Observable]
	listeners []Listener
	relay     *relay
	equals    func(a, b T) bool
}

// New returns a cell bound to the constant initial.
func New[T any](initial T) *Cell[T] {
	c := newCell[T]()
	c.kind = bindConst
	c.value = initial
	return c
}

// Computed returns a cell bound to fn. The binding does not run until
// the first read.
func Computed[T any](fn func(*Context) T) *Cell[T] {
	c := newCell[T]()
	c.kind = bindComputed
	c.compute = fn
	c.invalid = true
	return c
}

// Stateful returns a cell bound to fn, which receives the retained
// state of the previous evaluation, seeded from initial. The returned
// value becomes both the cell value and the next retained state.
func Stateful[T any](initial T, fn func(*Context, T) T) *Cell[T] {
	c := newCell[T]()
	c.kind = bindStateful
	c.mutate = fn
	c.retained = initial
	c.invalid = true
	return c
}

func newCell[T any]() *Cell[T] {
	c := &Cell[T]{
		deps:   mapset.NewThreadUnsafeSet[Observable](),
		equals: func(a, b T) bool { return defaultEquals(a, b) },
	}
	c.relay = &relay{target: c}
	return c
}

// WithEquals replaces the comparison used to suppress change
// notifications. Returns the cell for chaining at construction.
func (c *Cell[T]) WithEquals(eq func(a, b T) bool) *Cell[T] {
	c.equals = eq
	return c
}

// Value returns the cell's value, recomputing it first if the cell is
// invalidated. Panics with "cells: circular dependency" when the read
// re-enters a binding that is currently evaluating.
//
// Inside a binding, Value is an untracked read. Go through Use to
// record a dependency.
func (c *Cell[T]) Value() T {
	if c.invalid {
		c.recompute()
	}
	return c.value
}

// Use records the cell as a dependency of the evaluation ctx belongs
// to and returns its value, recomputing it first if it is
// invalidated. Using the same cell twice in one evaluation records a
// single dependency.
func (c *Cell[T]) Use(ctx *Context) T {
	ctx.used.Add(c)
	return c.Value()
}

func (c *Cell[T]) recompute() {
	if c.kind == bindConst {
		// nothing to run, the flag was raised by Invalidate
		c.invalid = false
		return
	}
	if c.evaluating {
		panic("cells: circular dependency")
	}
	c.evaluating = true
	defer func() { c.evaluating = false }()

	ctx := newContext()
	var next T
	switch c.kind {
	case bindComputed:
		next = c.compute(ctx)
	case bindStateful:
		next = c.mutate(ctx, c.retained)
	}

	// Cell state only changes after the binding returned normally. A
	// panic above leaves the flag set, the old value, retained state
	// and dependency set intact, and the next read retries.
	c.retarget(ctx.used)
	old := c.value
	c.value = next
	if c.kind == bindStateful {
		c.retained = next
	}
	c.invalid = false
	if !c.equals(old, next) {
		c.fireListeners()
	}
}

// retarget diffs the dependency set discovered by the evaluation
// against the previous one, detaching the relay from dropped
// dependencies and attaching it to added ones.
func (c *Cell[T]) retarget(next mapset.Set[Observable]) {
	c.deps.Difference(next).Each(func(o Observable) bool {
		o.RemoveListener(c.relay)
		return false
	})
	next.Difference(c.deps).Each(func(o Observable) bool {
		o.AddListener(c.relay)
		return false
	})
	c.deps = next
}

func (c *Cell[T]) detachAll() {
	c.deps.Each(func(o Observable) bool {
		o.RemoveListener(c.relay)
		return false
	})
	c.deps = mapset.NewThreadUnsafeSet[Observable]()
}

// SetValue rebinds the cell to the constant v. Former dependencies are
// detached, the invalidated flag cleared, and listeners fire iff v
// differs from the previously cached value.
func (c *Cell[T]) SetValue(v T) {
	c.detachAll()
	c.kind = bindConst
	c.compute = nil
	c.mutate = nil
	var zero T
	c.retained = zero
	old := c.value
	c.value = v
	c.invalid = false
	if !c.equals(old, v) {
		c.fireListeners()
	}
}

// Update sets the cell to fn applied to the current value.
func (c *Cell[T]) Update(fn func(T) T) {
	c.SetValue(fn(c.Value()))
}

// Bind rebinds the cell to the computed fn. Former dependencies are
// detached, the cell is invalidated and listeners fire
// unconditionally. fn does not run until the next read.
func (c *Cell[T]) Bind(fn func(*Context) T) {
	c.detachAll()
	c.kind = bindComputed
	c.compute = fn
	c.mutate = nil
	var zero T
	c.retained = zero
	c.invalid = true
	c.fireListeners()
}

// EagerBind is Bind followed by an immediate read.
func (c *Cell[T]) EagerBind(fn func(*Context) T) {
	c.Bind(fn)
	c.Value()
}

// SideEffecting rebinds the cell to the stateful fn with retained
// state seeded from initial. Like Bind it invalidates and fires
// unconditionally without running fn.
func (c *Cell[T]) SideEffecting(initial T, fn func(*Context, T) T) {
	c.detachAll()
	c.kind = bindStateful
	c.compute = nil
	c.mutate = fn
	c.retained = initial
	c.invalid = true
	c.fireListeners()
}

// SideEffectingAndRetain is SideEffecting seeded from the cell's
// current cached value.
func (c *Cell[T]) SideEffectingAndRetain(fn func(*Context, T) T) {
	c.SideEffecting(c.value, fn)
}

// Invalidate forces the invalidated flag and fires listeners without
// recomputing. Every call fires, even when the flag was already set.
func (c *Cell[T]) Invalidate() {
	c.invalid = true
	c.fireListeners()
}

// Invalidated reports whether the next read will recompute.
func (c *Cell[T]) Invalidated() bool {
	return c.invalid
}

// Dependencies returns the cells read through Use during the last
// completed evaluation. Order is unspecified.
func (c *Cell[T]) Dependencies() []Observable {
	return c.deps.ToSlice()
}

// ReadOnly narrows the cell to its read and listen capability.
func (c *Cell[T]) ReadOnly() Readable[T] {
	return c
}

// AddListener registers l. Adding a listener that is already
// registered is a no-op. Notification order is addition order.
func (c *Cell[T]) AddListener(l Listener) {
	for _, existing := range c.listeners {
		if existing == l {
			return
		}
	}
	c.listeners = append(c.listeners, l)
}

// RemoveListener removes l if registered, otherwise does nothing.
func (c *Cell[T]) RemoveListener(l Listener) {
	for i, existing := range c.listeners {
		if existing == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// markInvalidated raises the flag and reports whether this call was
// the false to true transition.
func (c *Cell[T]) markInvalidated() bool {
	if c.invalid {
		return false
	}
	c.invalid = true
	return true
}

// fireListeners runs one notification round over a snapshot of the
// registry, then sweeps disposable listeners that report done.
// Listeners added during the round fire next round.
func (c *Cell[T]) fireListeners() {
	if len(c.listeners) == 0 {
		return
	}
	round := make([]Listener, len(c.listeners))
	copy(round, c.listeners)
	for _, l := range round {
		l.OnChange(c)
	}
	kept := c.listeners[:0]
	for _, l := range c.listeners {
		if d, ok := l.(DisposableListener); ok && d.ShouldBeDisposed() {
			continue
		}
		kept = append(kept, l)
	}
	c.listeners = kept
}

