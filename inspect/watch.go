package inspect

import (
	"fmt"
	"time"

	"github.com/celljam/celljam/cells"
)

// Snapshot is one published observation of a watched cell.
type Snapshot struct {
	Name         string    `json:"name"`
	Value        string    `json:"value"`
	Invalidated  bool      `json:"invalidated"`
	Dependencies int       `json:"dependencies"`
	Seq          uint64    `json:"seq"`
	SampledAt    time.Time `json:"sampledAt"`
}

type watched struct {
	sample func(seq uint64) Snapshot
	detach func()
	dirty  bool
}

// Watch registers r with the server under name and returns a detach
// function. Like every cell-touching entry point it must be called
// from the goroutine that owns the graph. A new watch starts dirty so
// the next Flush publishes it.
func Watch[T any](s *Server, name string, r cells.Readable[T]) func() {
	l := cells.ListenFunc(func(cells.Observable) {
		s.markDirty(name)
	})
	r.AddListener(l)
	w := &watched{
		dirty: true,
		sample: func(seq uint64) Snapshot {
			// capture the flag before the read clears it
			invalidated := r.Invalidated()
			value := fmt.Sprint(r.Value())
			return Snapshot{
				Name:         name,
				Value:        value,
				Invalidated:  invalidated,
				Dependencies: len(r.Dependencies()),
				Seq:          seq,
				SampledAt:    time.Now(),
			}
		},
		detach: func() {
			r.RemoveListener(l)
		},
	}
	s.add(name, w)
	return func() {
		s.Unwatch(name)
	}
}

// Unwatch detaches the named watch and drops its snapshot from the
// published set. Owner goroutine only.
func (s *Server) Unwatch(name string) {
	w, ok := s.watches[name]
	if !ok {
		return
	}
	w.detach()
	delete(s.watches, name)
	delete(s.latest, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.publish()
}

// Flush samples every cell marked dirty since the previous flush,
// publishes the refreshed snapshot set for /cells.json and broadcasts
// the sampled batch to websocket clients. Sampling reads the cell, so
// an invalidated cell recomputes here. Owner goroutine only. Returns
// the number of cells sampled.
func (s *Server) Flush() int {
	var batch []Snapshot
	for _, name := range s.order {
		w := s.watches[name]
		if !w.dirty {
			continue
		}
		s.seq++
		snap := w.sample(s.seq)
		// a recompute during sampling echoes through the dirty
		// listener; the snapshot already covers it
		w.dirty = false
		s.latest[name] = snap
		batch = append(batch, snap)
	}
	if len(batch) == 0 {
		return 0
	}
	s.publish()
	s.hub.broadcast(batch)
	return len(batch)
}

func (s *Server) markDirty(name string) {
	if w, ok := s.watches[name]; ok {
		w.dirty = true
	}
}

func (s *Server) add(name string, w *watched) {
	if old, ok := s.watches[name]; ok {
		// rewatching a name keeps its position
		old.detach()
		s.watches[name] = w
		return
	}
	s.watches[name] = w
	s.order = append(s.order, name)
}

func (s *Server) publish() {
	all := make([]Snapshot, 0, len(s.order))
	for _, name := range s.order {
		if snap, ok := s.latest[name]; ok {
			all = append(all, snap)
		}
	}
	s.published.Store(all)
}
