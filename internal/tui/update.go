package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinybazaar/bazaar/internal/model"
	"github.com/tinybazaar/bazaar/internal/nav"
)

// Update handles messages.
func (m *ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ActionMsg:
		switch msg.Action {
		case ActionPushModal:
			if modal, ok := msg.Payload.(Modal); ok {
				m.PushModal(modal)
			}
		case ActionReloadCatalog:
			return m, m.loadCatalogCmd()
		}
		return m, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.CatalogState = msg.catalog
		m.lastError = ""
		m.shopCursor = clampCursor(m.shopCursor, len(m.products))
		m.homeCursor = clampCursor(m.homeCursor, len(m.featured))
		// The open product may have been deleted under us.
		if m.current.Kind == nav.KindProduct {
			m.Restore(m.current)
		}
		return m, nil

	case checkoutDoneMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.cart = nil
		m.lastError = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress dispatches key events: modal stack first, then global
// storefront shortcuts. Esc outside a modal is the physical back action.
func (m *ShopModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		// A confirmed exit quits from inside the modal's Update.
		if m.quitting {
			return m, tea.Quit
		}
		return m, cmd
	}

	k := m.keys

	switch {
	case key.Matches(msg, k.Back):
		m.history.Back()
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))
		return m, nil

	case key.Matches(msg, k.NextTab):
		if m.current.Kind == nav.KindAffiliateTab {
			m.nextAffiliateTab()
		} else {
			m.switchTab(1)
		}
		return m, nil

	case key.Matches(msg, k.PrevTab):
		if m.current.Kind != nav.KindAffiliateTab {
			m.switchTab(-1)
		}
		return m, nil

	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, k.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, k.Enter):
		return m, m.activateSelection()

	case key.Matches(msg, k.AddToCart):
		if m.current.Kind == nav.KindProduct {
			m.cartAdd(m.productID)
		} else if p, ok := m.selectedProduct(); ok {
			m.cartAdd(p.ID)
		}
		return m, nil

	case key.Matches(msg, k.Checkout):
		if len(m.cart) > 0 {
			return m, m.checkoutCmd()
		}
		return m, nil

	case key.Matches(msg, k.Login):
		if m.session != nil {
			if _, signedIn := m.session.User(); !signedIn {
				m.PushModal(NewLoginModal(m))
			}
		}
		return m, nil

	case key.Matches(msg, k.Logout):
		if m.session != nil {
			m.session.Logout()
		}
		return m, nil

	case key.Matches(msg, k.Admin):
		if m.session != nil && m.session.IsAdmin() && m.current.Kind != nav.KindCMS {
			m.Restore(nav.CMS())
			m.nav.PushNavState(nav.CMS())
		}
		return m, nil

	case key.Matches(msg, k.Affiliate):
		if m.session != nil && m.session.IsAffiliate() && m.current.Kind != nav.KindAffiliateTab {
			e := nav.AffiliateTab(model.AffiliateTabOverview)
			m.Restore(e)
			m.nav.PushNavState(e)
		}
		return m, nil

	case key.Matches(msg, k.Currency):
		m.cycleCurrency()
		return m, nil

	case key.Matches(msg, k.Delete):
		if m.current.Kind == nav.KindCMS {
			return m, m.adminDeleteCmd()
		}
		return m, nil

	case key.Matches(msg, k.Publish):
		if m.current.Kind == nav.KindCMS {
			return m, m.adminTogglePublishCmd()
		}
		return m, nil
	}

	return m, nil
}

// currentTabName maps the current entry onto a top tab slot.
func (m *ShopModel) currentTabName() string {
	switch m.current.Kind {
	case nav.KindTab:
		return m.current.Tab
	default:
		return model.TabHome
	}
}

// switchTab cycles the top tab row in the given direction.
func (m *ShopModel) switchTab(dir int) {
	cur := m.currentTabName()
	idx := 0
	for i, name := range model.TopTabs {
		if name == cur {
			idx = i
			break
		}
	}
	next := model.TopTabs[(idx+dir+len(model.TopTabs))%len(model.TopTabs)]
	m.nav.NavigateTo(next)
}

// nextAffiliateTab cycles the affiliate dashboard sub-tabs. Each switch is
// a real navigation so Esc walks back through them.
func (m *ShopModel) nextAffiliateTab() {
	idx := 0
	for i, name := range model.AffiliateTabs {
		if name == m.affTab {
			idx = i
			break
		}
	}
	e := nav.AffiliateTab(model.AffiliateTabs[(idx+1)%len(model.AffiliateTabs)])
	m.Restore(e)
	m.nav.PushNavState(e)
}

func (m *ShopModel) moveCursor(delta int) {
	switch m.current.Kind {
	case nav.KindHome:
		m.homeCursor = clampCursor(m.homeCursor+delta, len(m.featured))
	case nav.KindTab:
		switch m.current.Tab {
		case model.TabHome:
			m.homeCursor = clampCursor(m.homeCursor+delta, len(m.featured))
		case model.TabShop:
			m.shopCursor = clampCursor(m.shopCursor+delta, len(m.shopProducts()))
		case model.TabCart:
			m.cartCursor = clampCursor(m.cartCursor+delta, len(m.cart))
		}
	case nav.KindCMS:
		m.adminCursor = clampCursor(m.adminCursor+delta, len(m.products)+len(m.posts))
	}
}

// selectedProduct returns the product under the cursor on a listing screen.
func (m *ShopModel) selectedProduct() (model.Product, bool) {
	switch m.current.Kind {
	case nav.KindHome:
		if m.homeCursor < len(m.featured) {
			return m.featured[m.homeCursor], true
		}
	case nav.KindTab:
		switch m.current.Tab {
		case model.TabHome:
			if m.homeCursor < len(m.featured) {
				return m.featured[m.homeCursor], true
			}
		case model.TabShop:
			products := m.shopProducts()
			if m.shopCursor < len(products) {
				return products[m.shopCursor], true
			}
		case model.TabCart:
			if m.cartCursor < len(m.cart) {
				return m.findProduct(m.cart[m.cartCursor].ProductID)
			}
		}
	}
	return model.Product{}, false
}

// activateSelection is the Enter action for the current screen.
func (m *ShopModel) activateSelection() tea.Cmd {
	if p, ok := m.selectedProduct(); ok {
		m.openProduct(p.ID)
		return nil
	}
	if m.current.Kind == nav.KindTab && m.current.Tab == model.TabAccount {
		if m.session != nil {
			if _, signedIn := m.session.User(); !signedIn {
				m.PushModal(NewLoginModal(m))
			}
		}
	}
	return nil
}

// openProduct shows a product detail screen and records the navigation.
func (m *ShopModel) openProduct(id string) {
	e := nav.Product(id)
	m.Restore(e)
	if m.current.Kind != nav.KindProduct {
		return // restore fell back, nothing to push
	}
	m.nav.PushNavState(e)
}

// checkoutCmd turns the cart into orders, tagging each with the referral
// code this run arrived through.
func (m *ShopModel) checkoutCmd() tea.Cmd {
	store := m.store
	refCode := m.refCode
	lines := append([]CartLine(nil), m.cart...)
	products := make(map[string]model.Product, len(lines))
	for _, line := range lines {
		if p, ok := m.findProduct(line.ProductID); ok {
			products[line.ProductID] = p
		}
	}

	return func() tea.Msg {
		placed := 0
		now := time.Now()
		for i, line := range lines {
			p, ok := products[line.ProductID]
			if !ok {
				continue
			}
			order := model.Order{
				ID:         fmt.Sprintf("o-%d-%d", now.UnixNano(), i),
				ProductID:  p.ID,
				Quantity:   line.Quantity,
				TotalCents: p.PriceCents * int64(line.Quantity),
				RefCode:    refCode,
				CreatedAt:  now,
			}
			if err := store.InsertOrder(order); err != nil {
				return checkoutDoneMsg{orders: placed, err: err}
			}
			placed++
		}
		return checkoutDoneMsg{orders: placed}
	}
}

// adminDeleteCmd removes the product under the admin cursor and reloads
// the catalog.
func (m *ShopModel) adminDeleteCmd() tea.Cmd {
	if m.adminCursor >= len(m.products) {
		return nil
	}
	id := m.products[m.adminCursor].ID
	store := m.store
	return func() tea.Msg {
		if err := store.DeleteProduct(id); err != nil {
			return catalogLoadedMsg{err: err}
		}
		return ActionMsg{Action: ActionReloadCatalog}
	}
}

// adminTogglePublishCmd flips the published flag of the post under the
// admin cursor. The post region sits below the product region.
func (m *ShopModel) adminTogglePublishCmd() tea.Cmd {
	idx := m.adminCursor - len(m.products)
	if idx < 0 || idx >= len(m.posts) {
		return nil
	}
	post := m.posts[idx]
	post.Published = !post.Published
	store := m.store
	return func() tea.Msg {
		if err := store.SavePost(post); err != nil {
			return catalogLoadedMsg{err: err}
		}
		return ActionMsg{Action: ActionReloadCatalog}
	}
}
