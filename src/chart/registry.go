package chart

import "sync"

// ChartState is the cached output of the latest render of a surface. A published state is
// never mutated; a new render publishes a fresh value.
type ChartState struct {
	Bars   []BarGeometry
	Labels [NumBars]string

	listenersInstalled bool
}

// ListenersInstalled reports whether hover handlers are bound to the surface.
func (s *ChartState) ListenersInstalled() bool { return s.listenersInstalled }

// Registry maps surface ids to their ChartState for the lifetime of the page. Entries are
// created on first render and never removed.
type Registry struct {
	mu     sync.Mutex
	states map[string]*ChartState
}

func NewRegistry() *Registry {
	return &Registry{states: map[string]*ChartState{}}
}

// Get returns the current state of a surface.
func (r *Registry) Get(id string) (*ChartState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.states[id]
	return s, ok
}

// Len returns the number of surfaces rendered so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// publish replaces the geometry of a surface, keeping its listener flag.
func (r *Registry) publish(id string, bars []BarGeometry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := &ChartState{Bars: bars, Labels: Labels}
	if prev, ok := r.states[id]; ok {
		next.listenersInstalled = prev.listenersInstalled
	}
	r.states[id] = next
}

// claimListeners sets the listener flag and reports whether this call set it.
func (r *Registry) claimListeners(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.states[id]
	if ok && prev.listenersInstalled {
		return false
	}
	next := &ChartState{Labels: Labels, listenersInstalled: true}
	if ok {
		next.Bars = prev.Bars
		next.Labels = prev.Labels
	}
	r.states[id] = next
	return true
}
