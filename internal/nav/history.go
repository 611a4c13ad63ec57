package nav

import "log"

// PopEvent is a physical back/forward notification. The entry payload is
// informational only: listeners must not assume it matches the logical
// stack's top. Decisions are made from stack depth and guard flags.
type PopEvent struct {
	Entry    Entry
	HasState bool
}

// Host is the raw linear history mechanism; the terminal client uses
// LinearHistory, a web client would use the browser. All mutation of
// physical history goes through a Bridge; nothing else touches a Host.
type Host interface {
	// PushState records a new physical entry carrying the payload and
	// visible fragment.
	PushState(e Entry, fragment string) error
	// ReplaceState swaps the payload and fragment of the current entry
	// without growing the history.
	ReplaceState(e Entry, fragment string) error
	// State returns the current entry's payload, if it has one.
	State() (Entry, bool, error)
	// Fragment returns the current visible address fragment.
	Fragment() (string, error)
	// Back performs one real back navigation. The resulting PopEvent is
	// delivered to the registered listener.
	Back() error
	// Listen registers the pop listener. At most one listener is ever
	// registered per Host.
	Listen(fn func(PopEvent)) error
}

// Bridge is the sole adapter between stack operations and a Host. Every
// host failure degrades to a logged no-op: the logical stack stays the
// source of truth and in-app navigation keeps working without physical
// back integration.
type Bridge struct {
	host      Host
	listening bool
}

// NewBridge wraps a host. A nil host yields a bridge whose operations are
// all no-ops (the degraded mode of an unavailable history mechanism).
func NewBridge(host Host) *Bridge {
	return &Bridge{host: host}
}

// PushPhysical records a new physical entry for e, setting the product
// fragment or clearing it.
func (b *Bridge) PushPhysical(e Entry) {
	if b.host == nil {
		return
	}
	if err := b.host.PushState(e, e.Fragment()); err != nil {
		log.Printf("nav: push state: %v", err)
	}
}

// ReplaceIfMissing replaces the current physical entry with e when it
// carries no payload. Called once at startup so the floor entry does not
// cost an extra back-press.
func (b *Bridge) ReplaceIfMissing(e Entry) {
	if b.host == nil {
		return
	}
	_, has, err := b.host.State()
	if err != nil {
		log.Printf("nav: read state: %v", err)
		return
	}
	if has {
		return
	}
	if err := b.host.ReplaceState(e, e.Fragment()); err != nil {
		log.Printf("nav: replace state: %v", err)
	}
}

// Fragment returns the current visible fragment, or "" in degraded mode.
func (b *Bridge) Fragment() string {
	if b.host == nil {
		return ""
	}
	frag, err := b.host.Fragment()
	if err != nil {
		log.Printf("nav: read fragment: %v", err)
		return ""
	}
	return frag
}

// Listen registers the single pop listener for the lifetime of the page.
// Registering twice is a construction-time bug, not a runtime condition.
func (b *Bridge) Listen(fn func(PopEvent)) {
	if b.listening {
		panic("nav: pop listener registered twice")
	}
	b.listening = true
	if b.host == nil {
		return
	}
	if err := b.host.Listen(fn); err != nil {
		log.Printf("nav: register listener: %v", err)
	}
}

// TriggerBack asks the host for one real back navigation. Used only after
// the user confirmed exit.
func (b *Bridge) TriggerBack() {
	if b.host == nil {
		return
	}
	if err := b.host.Back(); err != nil {
		log.Printf("nav: trigger back: %v", err)
	}
}

// Trap pushes a no-op physical entry at the same logical position,
// neutralizing an unwanted physical back so the next back-press
// re-triggers the same decision point.
func (b *Bridge) Trap(current Entry) {
	if b.host == nil {
		return
	}
	if err := b.host.PushState(current, current.Fragment()); err != nil {
		log.Printf("nav: trap: %v", err)
	}
}
