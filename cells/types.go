package cells

//go:generate go run github.com/celljam/celljam/cmd/codegen --out typed.go

// Listener is notified when a cell it is registered on may have
// changed. Spurious notifications are legal; a listener that needs the
// actual value reads it back from the source.
//
// Listener values must be comparable, registries dedup by identity.
// Implement listeners on pointer receivers.
type Listener interface {
	OnChange(src Observable)
}

// DisposableListener is a Listener that can report itself finished.
// ShouldBeDisposed is checked after every notification round; a
// listener that answers true is removed right after the round it was
// fired in, but it is still fired during that round.
type DisposableListener interface {
	Listener
	ShouldBeDisposed() bool
}

// Observable is the listener-facing surface of a cell. Anything that
// can be depended on satisfies it.
type Observable interface {
	AddListener(l Listener)
	RemoveListener(l Listener)
	Invalidated() bool
	Dependencies() []Observable
}

// Readable is the read and track capability of a cell of element type
// T, the surface ReadOnly hands out.
type Readable[T any] interface {
	Observable
	Value() T
	Use(ctx *Context) T
}

type bindingKind uint8

const (
	bindConst bindingKind = iota
	bindComputed
	bindStateful
)
