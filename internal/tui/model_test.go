package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinybazaar/bazaar/internal/currency"
	"github.com/tinybazaar/bazaar/internal/model"
	"github.com/tinybazaar/bazaar/internal/nav"
	"github.com/tinybazaar/bazaar/internal/session"
	"github.com/tinybazaar/bazaar/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	hash, err := session.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	fixtures := []func() error{
		func() error { return st.SaveCategory(model.Category{ID: "kitchen", Name: "Kitchen", Sort: 1}) },
		func() error {
			return st.SaveProduct(model.Product{
				ID: "p1", Name: "Mug", CategoryID: "kitchen", PriceCents: 1000, Featured: true,
				CreatedAt: time.Now(),
			})
		},
		func() error {
			return st.SaveProduct(model.Product{
				ID: "p2", Name: "Lamp", CategoryID: "kitchen", PriceCents: 4500,
				CreatedAt: time.Now().Add(-time.Hour),
			})
		},
		func() error {
			return st.SaveUser(model.User{ID: "u1", Name: "root", PasswordHash: hash, Role: model.RoleAdmin})
		},
		func() error {
			return st.SaveUser(model.User{
				ID: "u2", Name: "ann", PasswordHash: hash,
				Role: model.RoleAffiliate, AffiliateCode: "AFF1",
			})
		},
	}
	for _, fn := range fixtures {
		if err := fn(); err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}
	return st
}

func newShop(t *testing.T, opts Options) *ShopModel {
	t.Helper()
	if opts.Store == nil {
		opts.Store = newTestStore(t)
	}
	if opts.Session == nil {
		opts.Session = session.New(opts.Store)
	}
	if opts.Converter == nil {
		opts.Converter = currency.New("USD", map[string]float64{"EUR": 0.9})
	}
	m := NewShopModel(opts)
	if cmd := m.Init(); cmd != nil {
		m.Update(cmd())
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func press(m *ShopModel, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, last = m.Update(msg)
	}
	return last
}

func TestOpenProductAndBack(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{})

	press(m, "tab") // shop tab
	if m.current.Kind != nav.KindTab || m.current.Tab != model.TabShop {
		t.Fatalf("current = %v, want shop tab", m.current)
	}

	press(m, "enter")
	if m.current.Kind != nav.KindProduct {
		t.Fatalf("current = %v, want product", m.current)
	}
	if got := m.Nav().Depth(); got != 3 {
		t.Errorf("depth = %d, want 3", got)
	}

	press(m, "esc")
	if m.current.Kind != nav.KindTab || m.current.Tab != model.TabShop {
		t.Errorf("after back current = %v, want shop tab", m.current)
	}
	if got := m.Nav().Depth(); got != 2 {
		t.Errorf("depth = %d, want 2", got)
	}
}

func TestBackAtFloorAsksBeforeLeaving(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{})

	press(m, "esc")
	if !m.Nav().ConfirmationShowing() {
		t.Fatal("confirmation not showing after back at floor")
	}
	top := m.TopModal()
	if top == nil || top.ID() != exitModalID {
		t.Fatalf("top modal = %v, want exit confirmation", top)
	}

	press(m, "n")
	if m.Nav().ConfirmationShowing() {
		t.Error("confirmation still showing after cancel")
	}
	if m.HasModal() {
		t.Error("modal still on stack after cancel")
	}
}

func TestConfirmExitQuits(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{})

	press(m, "esc")
	cmd := press(m, "y")
	if cmd == nil {
		t.Fatal("no cmd after confirming exit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("confirmed exit did not quit")
	}
	if m.Nav().ExitArmed() {
		t.Error("exit flag still armed after leaving")
	}
}

func TestBackWhileConfirmationShowingCancels(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{})

	press(m, "esc", "esc")
	if m.Nav().ConfirmationShowing() {
		t.Error("second back did not cancel the confirmation")
	}
	if m.HasModal() {
		t.Error("dialog still open after implicit cancel")
	}
}

func TestDeletedProductFallsBackToHome(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	m := newShop(t, Options{Store: st})

	press(m, "tab", "enter") // shop, open newest product (p1)
	press(m, "tab", "tab")   // cart, account: product sits below two tabs

	if err := st.DeleteProduct("p1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	press(m, "esc", "esc") // pop back down to the deleted product
	if m.current.Kind != nav.KindHome {
		t.Errorf("current = %v, want home fallback", m.current)
	}
}

func TestCheckoutPlacesOrderWithRefCode(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	m := newShop(t, Options{Store: st, RefCode: "AFF1"})

	press(m, "tab", "a") // shop, add p1 to cart
	if len(m.cart) != 1 {
		t.Fatalf("cart len = %d, want 1", len(m.cart))
	}

	cmd := press(m, "b")
	if cmd == nil {
		t.Fatal("checkout produced no cmd")
	}
	msg, ok := cmd().(checkoutDoneMsg)
	if !ok {
		t.Fatalf("checkout msg = %T", msg)
	}
	if msg.err != nil {
		t.Fatalf("checkout: %v", msg.err)
	}
	if msg.orders != 1 {
		t.Errorf("orders placed = %d, want 1", msg.orders)
	}
	m.Update(msg)
	if len(m.cart) != 0 {
		t.Error("cart not cleared after checkout")
	}

	points, err := st.EarningsByDay("AFF1", 1)
	if err != nil {
		t.Fatalf("EarningsByDay: %v", err)
	}
	var total int64
	for _, pt := range points {
		total += pt.Cents
	}
	if total != 100 {
		t.Errorf("commission = %d cents, want 100", total)
	}
}

func TestLogoutResetsNavigation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	sess := session.New(st)
	m := newShop(t, Options{Store: st, Session: sess})

	if err := sess.Login("root", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	press(m, "tab", "c") // shop, then content admin
	if m.current.Kind != nav.KindCMS {
		t.Fatalf("current = %v, want CMS admin", m.current)
	}
	if m.Nav().Depth() != 3 {
		t.Fatalf("depth = %d, want 3", m.Nav().Depth())
	}

	press(m, "L")
	if m.Nav().Depth() != 1 {
		t.Errorf("depth after logout = %d, want 1", m.Nav().Depth())
	}
	if m.current.Kind != nav.KindHome {
		t.Errorf("current after logout = %v, want home", m.current)
	}
}

func TestDeepLinkOpensProduct(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{Fragment: "product-p2"})

	if m.current.Kind != nav.KindProduct || m.productID != "p2" {
		t.Fatalf("current = %v (product %q), want deep-linked p2", m.current, m.productID)
	}
	if m.Nav().Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.Nav().Depth())
	}

	press(m, "esc")
	if m.current.Kind != nav.KindHome {
		t.Errorf("after back current = %v, want home", m.current)
	}
}

func TestAffiliateDashboardTabs(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	sess := session.New(st)
	m := newShop(t, Options{Store: st, Session: sess})

	if err := sess.Login("ann", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	press(m, "f")
	if m.current.Kind != nav.KindAffiliateTab || m.affTab != model.AffiliateTabOverview {
		t.Fatalf("current = %v/%s, want affiliate overview", m.current, m.affTab)
	}

	press(m, "tab")
	if m.affTab != model.AffiliateTabLinks {
		t.Errorf("affTab = %s, want links", m.affTab)
	}

	press(m, "esc")
	if m.affTab != model.AffiliateTabOverview {
		t.Errorf("after back affTab = %s, want overview", m.affTab)
	}
}

func TestGuestCannotOpenAdmin(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{})

	press(m, "c")
	if m.current.Kind == nav.KindCMS {
		t.Error("guest opened content admin")
	}
	if m.Nav().Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.Nav().Depth())
	}
}

func TestCurrencyCycle(t *testing.T) {
	t.Parallel()
	m := newShop(t, Options{})

	if m.displayCurrency != "USD" {
		t.Fatalf("display currency = %s, want USD", m.displayCurrency)
	}
	press(m, "m")
	if m.displayCurrency != "EUR" {
		t.Errorf("display currency = %s, want EUR", m.displayCurrency)
	}
	press(m, "m")
	if m.displayCurrency != "USD" {
		t.Errorf("display currency = %s, want USD again", m.displayCurrency)
	}
}
