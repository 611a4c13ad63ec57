package nav

import "log"

// ViewRestorer reproduces the UI state for a popped entry. Implementations
// consult the session and catalog on every call, never caching roles:
// stale products fall back to Home and privilege-mismatched entries are
// ignored without error.
type ViewRestorer interface {
	Restore(e Entry)
}

// ExitPrompter shows and hides the "leave the shop?" confirmation UI.
type ExitPrompter interface {
	ShowExitPrompt()
	HideExitPrompt()
}

// ExitFunc performs the actual leave once a confirmed exit's back
// navigation has been consumed. The terminal client quits the program;
// a browser host would simply navigate away.
type ExitFunc func()

// Controller composes the stack, the history bridge, and the two exit
// guard flags. It is the single owner of all navigation state: the
// restorer and prompter only receive calls, and the registered pop
// listener delegates straight to the controller instance so every read
// observes current state rather than a captured snapshot.
type Controller struct {
	stack    *Stack
	bridge   *Bridge
	restorer ViewRestorer
	prompter ExitPrompter
	exit     ExitFunc

	// Exit guard. At most one flag is true at any instant.
	allowExit  bool // armed by ConfirmExit, consumed by the next pop
	confirming bool // confirmation UI visible, consumed by the next pop

	bootstrapped bool
}

// NewController wires a controller to a host and registers its pop
// listener. Construction is the only registration site; a second
// registration on the same bridge panics.
func NewController(host Host, restorer ViewRestorer, prompter ExitPrompter, exit ExitFunc) *Controller {
	c := &Controller{
		stack:    NewStack(),
		bridge:   NewBridge(host),
		restorer: restorer,
		prompter: prompter,
		exit:     exit,
	}
	c.bridge.Listen(c.handlePop)
	return c
}

// Bootstrap runs the one-time startup path: it seeds the physical history
// floor and, when the address fragment carries a product deep link,
// performs one initial product restoration. Subsequent calls are no-ops.
func (c *Controller) Bootstrap() {
	if c.bootstrapped {
		return
	}
	c.bootstrapped = true

	frag := c.bridge.Fragment()
	c.bridge.ReplaceIfMissing(Home())

	if id, ok := ProductIDFromFragment(frag); ok {
		e := Product(id)
		c.stack.Push(e)
		c.bridge.PushPhysical(e)
		c.restorer.Restore(e)
	}
}

// PushNavState records an explicit in-app navigation: the stack grows and
// a matching physical entry is pushed. Pushes arriving while the exit
// confirmation is showing are dropped; the dialog owns the screen and a
// stray navigation must not desync stack and history.
func (c *Controller) PushNavState(e Entry) {
	if c.confirming {
		log.Printf("nav: dropping push of %s while exit confirmation showing", e)
		return
	}
	c.stack.Push(e)
	c.bridge.PushPhysical(e)
}

// NavigateTo switches to a top-level tab: any open product view is
// cleared, then the tab entry is pushed.
func (c *Controller) NavigateTo(tabName string) {
	if c.confirming {
		return
	}
	e := Tab(tabName)
	c.restorer.Restore(e)
	c.PushNavState(e)
}

// handlePop is the single back/forward listener. The event payload is
// ignored; the outcome depends only on the guard flags and stack depth.
func (c *Controller) handlePop(PopEvent) {
	// Exit was confirmed: consume the armed flag and let the host leave.
	if c.allowExit {
		c.allowExit = false
		if c.exit != nil {
			c.exit()
		}
		return
	}

	// Back pressed while the dialog was open: implicit cancel.
	if c.confirming {
		c.confirming = false
		c.prompter.HideExitPrompt()
		c.bridge.Trap(c.stack.Peek())
		return
	}

	// At the floor there is nothing to pop: ask before leaving.
	if c.stack.Len() <= 1 {
		c.confirming = true
		c.prompter.ShowExitPrompt()
		c.bridge.Trap(c.stack.Peek())
		return
	}

	// Genuine back navigation: the host already moved, only the logical
	// stack and the view need to follow.
	newTop, _ := c.stack.Pop()
	c.restorer.Restore(newTop)
}

// ConfirmExit is the confirmation UI's "yes" action: arm the exit flag
// and perform one real back navigation.
func (c *Controller) ConfirmExit() {
	if !c.confirming {
		return
	}
	c.confirming = false
	c.prompter.HideExitPrompt()
	c.allowExit = true
	c.bridge.TriggerBack()
}

// CancelExit is the confirmation UI's "no" action. Calling it when no
// confirmation is showing is a no-op, so repeated cancels are harmless.
func (c *Controller) CancelExit() {
	if !c.confirming {
		return
	}
	c.confirming = false
	c.prompter.HideExitPrompt()
	c.bridge.Trap(c.stack.Peek())
}

// Reset returns the controller to its initial state: [Home] and an idle
// guard. Wired to the session's logout event.
func (c *Controller) Reset() {
	c.stack.Reset()
	c.allowExit = false
	if c.confirming {
		c.confirming = false
		c.prompter.HideExitPrompt()
	}
}

// Depth returns the logical stack depth.
func (c *Controller) Depth() int { return c.stack.Len() }

// Current returns the logical top entry.
func (c *Controller) Current() Entry { return c.stack.Peek() }

// Entries returns a copy of the logical stack, oldest first.
func (c *Controller) Entries() []Entry { return c.stack.Entries() }

// ConfirmationShowing reports whether the exit confirmation is visible.
func (c *Controller) ConfirmationShowing() bool { return c.confirming }

// ExitArmed reports whether the next pop lets the host leave.
func (c *Controller) ExitArmed() bool { return c.allowExit }
