package nav

import "testing"

func TestLinearHistory_PushTruncatesForward(t *testing.T) {
	t.Parallel()

	h := NewLinearHistory()
	if err := h.Listen(func(PopEvent) {}); err != nil {
		t.Fatalf("Listen: %v", err)
	}

	h.PushState(Tab("shop"), "")
	h.PushState(Product("1"), "product-1")
	h.Back() // now at tab:shop
	h.PushState(Tab("cart"), "")

	// initial + shop + cart: the product entry was truncated.
	if got := h.Len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
	e, has, _ := h.State()
	if !has || e != Tab("cart") {
		t.Fatalf("current = (%s, %v), want tab:cart", e, has)
	}
}

func TestLinearHistory_BackNotifiesListener(t *testing.T) {
	t.Parallel()

	var events []PopEvent
	h := NewLinearHistory()
	h.Listen(func(ev PopEvent) { events = append(events, ev) })

	h.ReplaceState(Home(), "")
	h.PushState(Tab("shop"), "")
	h.Back()

	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if !events[0].HasState || events[0].Entry != Home() {
		t.Fatalf("event = %+v, want home with state", events[0])
	}
}

func TestLinearHistory_BackAtFirstEntryStillNotifies(t *testing.T) {
	t.Parallel()

	var events []PopEvent
	h := NewLinearHistory()
	h.Listen(func(ev PopEvent) { events = append(events, ev) })
	h.ReplaceState(Home(), "")

	h.Back()
	h.Back()

	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if got := h.Len(); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
}

func TestLinearHistory_ForwardAfterBack(t *testing.T) {
	t.Parallel()

	var events []PopEvent
	h := NewLinearHistory()
	h.Listen(func(ev PopEvent) { events = append(events, ev) })

	h.ReplaceState(Home(), "")
	h.PushState(Tab("shop"), "")
	h.Back()
	h.Forward()

	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[1].Entry != Tab("shop") {
		t.Fatalf("forward event = %s, want tab:shop", events[1].Entry)
	}
}

func TestLinearHistory_FragmentRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewLinearHistory()
	h.SetFragment("product-7")

	frag, err := h.Fragment()
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	if frag != "product-7" {
		t.Fatalf("fragment = %q, want product-7", frag)
	}

	h.PushState(Tab("shop"), "")
	frag, _ = h.Fragment()
	if frag != "" {
		t.Fatalf("fragment after push = %q, want empty", frag)
	}
}

func TestLinearHistory_SecondListenerRejected(t *testing.T) {
	t.Parallel()

	h := NewLinearHistory()
	if err := h.Listen(func(PopEvent) {}); err != nil {
		t.Fatalf("first Listen: %v", err)
	}
	if err := h.Listen(func(PopEvent) {}); err == nil {
		t.Fatal("second Listen succeeded, want error")
	}
}
