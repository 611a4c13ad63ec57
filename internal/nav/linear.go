package nav

import "errors"

// ErrListenerRegistered is returned when a second listener registration
// is attempted on a LinearHistory.
var ErrListenerRegistered = errors.New("nav: listener already registered")

type histEntry struct {
	entry    Entry
	hasState bool
	fragment string
}

// LinearHistory is the in-process history host used by the terminal
// client. It models a browser's single back/forward list: a linear set of
// entries with a current position, forward truncation on push, and a pop
// notification delivered to the listener on every back or forward
// navigation. A back navigation at the first entry still notifies; the
// position simply cannot move further. Deciding whether such a press
// means "leave" is the listener's call, not the history's.
type LinearHistory struct {
	entries  []histEntry
	pos      int
	listener func(PopEvent)
}

// NewLinearHistory creates a history with one initial payload-less entry,
// like a fresh page load.
func NewLinearHistory() *LinearHistory {
	return &LinearHistory{entries: []histEntry{{}}}
}

// PushState appends a new entry after the current position, truncating any
// forward entries.
func (h *LinearHistory) PushState(e Entry, fragment string) error {
	h.entries = append(h.entries[:h.pos+1], histEntry{entry: e, hasState: true, fragment: fragment})
	h.pos = len(h.entries) - 1
	return nil
}

// ReplaceState swaps the current entry's payload and fragment in place.
func (h *LinearHistory) ReplaceState(e Entry, fragment string) error {
	h.entries[h.pos] = histEntry{entry: e, hasState: true, fragment: fragment}
	return nil
}

// State returns the current entry's payload.
func (h *LinearHistory) State() (Entry, bool, error) {
	cur := h.entries[h.pos]
	return cur.entry, cur.hasState, nil
}

// Fragment returns the current visible fragment.
func (h *LinearHistory) Fragment() (string, error) {
	return h.entries[h.pos].fragment, nil
}

// SetFragment overrides the current fragment. The client uses it to model
// arriving on a deep link before the controller bootstraps.
func (h *LinearHistory) SetFragment(fragment string) {
	h.entries[h.pos].fragment = fragment
}

// Back performs one back navigation and notifies the listener.
func (h *LinearHistory) Back() error {
	if h.pos > 0 {
		h.pos--
	}
	h.notify()
	return nil
}

// Forward performs one forward navigation, if any forward entries exist.
func (h *LinearHistory) Forward() error {
	if h.pos >= len(h.entries)-1 {
		return nil
	}
	h.pos++
	h.notify()
	return nil
}

// Listen registers the single pop listener.
func (h *LinearHistory) Listen(fn func(PopEvent)) error {
	if h.listener != nil {
		return ErrListenerRegistered
	}
	h.listener = fn
	return nil
}

// Len returns the number of physical entries.
func (h *LinearHistory) Len() int { return len(h.entries) }

func (h *LinearHistory) notify() {
	if h.listener == nil {
		return
	}
	cur := h.entries[h.pos]
	h.listener(PopEvent{Entry: cur.entry, HasState: cur.hasState})
}
