package cells

// FuncListener adapts a plain function to the Listener interface.
type FuncListener struct {
	fn func(src Observable)
}

func ListenFunc(fn func(src Observable)) *FuncListener {
	return &FuncListener{fn: fn}
}

func (l *FuncListener) OnChange(src Observable) {
	l.fn(src)
}

// OnceListener fires a single time, then reports itself disposable so
// the registry drops it after the round it fired in.
type OnceListener struct {
	fn   func(src Observable)
	done bool
}

func ListenOnce(fn func(src Observable)) *OnceListener {
	return &OnceListener{fn: fn}
}

func (l *OnceListener) OnChange(src Observable) {
	if l.done {
		return
	}
	l.done = true
	l.fn(src)
}

func (l *OnceListener) ShouldBeDisposed() bool {
	return l.done
}
