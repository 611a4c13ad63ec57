package nav

import "testing"

func TestNewStack_SeededWithHome(t *testing.T) {
	t.Parallel()

	s := NewStack()
	if got := s.Len(); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
	if got := s.Peek(); got.Kind != KindHome {
		t.Fatalf("floor = %s, want home", got)
	}
}

func TestStack_PushPopPeek(t *testing.T) {
	t.Parallel()

	s := NewStack()
	s.Push(Tab("cart"))
	s.Push(Product("42"))

	if got := s.Peek(); got != Product("42") {
		t.Fatalf("peek = %s, want product:42", got)
	}

	newTop, ok := s.Pop()
	if !ok {
		t.Fatal("pop above floor returned ok=false")
	}
	if newTop != Tab("cart") {
		t.Fatalf("new top = %s, want tab:cart", newTop)
	}
	if got := s.Len(); got != 2 {
		t.Fatalf("len after pop = %d, want 2", got)
	}
}

func TestStack_PopRefusesFloor(t *testing.T) {
	t.Parallel()

	s := NewStack()
	newTop, ok := s.Pop()
	if ok {
		t.Fatal("pop at floor returned ok=true")
	}
	if newTop.Kind != KindHome {
		t.Fatalf("new top = %s, want home", newTop)
	}
	if got := s.Len(); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
}

func TestStack_AdjacentDuplicatesAllowed(t *testing.T) {
	t.Parallel()

	s := NewStack()
	s.Push(Tab("shop"))
	s.Push(Tab("shop"))
	if got := s.Len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
}

func TestStack_FloorInvariantAfterAnySequence(t *testing.T) {
	t.Parallel()

	s := NewStack()
	ops := []func(){
		func() { s.Push(Tab("shop")) },
		func() { s.Pop() },
		func() { s.Pop() },
		func() { s.Push(Product("1")) },
		func() { s.Push(CMS()) },
		func() { s.Reset() },
		func() { s.Pop() },
		func() { s.Push(AffiliateTab("links")) },
	}
	for i, op := range ops {
		op()
		if s.Len() < 1 {
			t.Fatalf("after op %d: len = %d, want >= 1", i, s.Len())
		}
		if s.Entries()[0].Kind != KindHome {
			t.Fatalf("after op %d: floor = %s, want home", i, s.Entries()[0])
		}
	}
}

func TestStack_Reset(t *testing.T) {
	t.Parallel()

	s := NewStack()
	s.Push(Tab("account"))
	s.Push(CMS())
	s.Reset()

	if got := s.Len(); got != 1 {
		t.Fatalf("len after reset = %d, want 1", got)
	}
	if got := s.Peek(); got.Kind != KindHome {
		t.Fatalf("top after reset = %s, want home", got)
	}
}

func TestEntry_Fragment(t *testing.T) {
	t.Parallel()

	if got := Product("42").Fragment(); got != "product-42" {
		t.Errorf("product fragment = %q, want product-42", got)
	}
	for _, e := range []Entry{Home(), Tab("shop"), CMS(), AffiliateTab("links")} {
		if got := e.Fragment(); got != "" {
			t.Errorf("%s fragment = %q, want empty", e, got)
		}
	}
}

func TestProductIDFromFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fragment string
		wantID   string
		wantOK   bool
	}{
		{"product-42", "42", true},
		{"product-sku-9", "sku-9", true},
		{"product-", "", false},
		{"post-42", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := ProductIDFromFragment(tt.fragment)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ProductIDFromFragment(%q) = (%q, %v), want (%q, %v)",
				tt.fragment, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
