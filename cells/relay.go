package cells

type relayTarget interface {
	markInvalidated() bool
	fireListeners()
}

// relay stands in for a dependent cell inside the listener registries
// of its dependencies. Each cell owns exactly one, so a registry can
// hold at most one relay per direct dependent.
//
// On fire it marks the dependent invalidated and, only on the false to
// true transition, forwards the dependent's own notification round.
// It never recomputes; reads do that.
type relay struct {
	target relayTarget
}

func (r *relay) OnChange(src Observable) {
	if r.target.markInvalidated() {
		r.target.fireListeners()
	}
}
