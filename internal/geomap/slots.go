package geomap

// Instance is a live map handle occupying one slot. The runtime analogue
// owns tile-layer listeners and canvases, so it must be destroyed before a
// replacement is constructed.
type Instance struct {
	Slot      string
	Spec      Spec
	destroyed bool
}

// Destroyed reports whether the instance has been torn down.
func (i *Instance) Destroyed() bool { return i.destroyed }

// Registry tracks at most one live instance per map slot and enforces the
// release-then-recreate discipline on every re-render.
type Registry struct {
	live     map[string]*Instance
	destroys map[string]int
	creates  map[string]int
}

// NewRegistry returns an empty slot registry.
func NewRegistry() *Registry {
	return &Registry{
		live:     make(map[string]*Instance),
		destroys: make(map[string]int),
		creates:  make(map[string]int),
	}
}

// Render tears down any existing instance in the spec's slot, then installs
// a fresh one. Tearing down an empty slot is a no-op.
func (r *Registry) Render(spec Spec) *Instance {
	r.Teardown(spec.Slot)
	inst := &Instance{Slot: spec.Slot, Spec: spec}
	r.live[spec.Slot] = inst
	r.creates[spec.Slot]++
	return inst
}

// Teardown destroys the instance in a slot, if any.
func (r *Registry) Teardown(slot string) {
	inst, ok := r.live[slot]
	if !ok || inst == nil {
		return
	}
	inst.destroyed = true
	delete(r.live, slot)
	r.destroys[slot]++
}

// Live returns the current instance for a slot, or nil.
func (r *Registry) Live(slot string) *Instance { return r.live[slot] }

// Counts returns how many times a slot has been destroyed and created.
func (r *Registry) Counts(slot string) (destroys, creates int) {
	return r.destroys[slot], r.creates[slot]
}
