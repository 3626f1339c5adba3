// Package theme carries the dark/light mode identifier and the subscription
// bus that re-renders theme-dependent output when the mode changes.
package theme

// Mode is the active color scheme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Modes lists every mode a build renders.
var Modes = []Mode{Dark, Light}

// Bus broadcasts mode changes to registered renderers. Map-based renderers
// bake tile sources and marker colors in at construction time, so they must
// fully rebuild on every change; DOM charts restyle through CSS variables
// and never subscribe.
type Bus struct {
	subs []func(Mode)
}

// Subscribe registers a rebuild callback.
func (b *Bus) Subscribe(fn func(Mode)) {
	b.subs = append(b.subs, fn)
}

// Broadcast invokes every registered callback with the new mode, in
// registration order.
func (b *Bus) Broadcast(m Mode) {
	for _, fn := range b.subs {
		fn(m)
	}
}
