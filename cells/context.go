package cells

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Context tracks the dependencies of one binding evaluation. Every
// evaluation gets a fresh one; bindings must not retain it past their
// own return.
type Context struct {
	used mapset.Set[Observable]
}

func newContext() *Context {
	return &Context{used: mapset.NewThreadUnsafeSet[Observable]()}
}
