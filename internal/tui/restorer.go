package tui

import (
	"errors"
	"log"

	"github.com/tinybazaar/bazaar/internal/model"
	"github.com/tinybazaar/bazaar/internal/nav"
)

// Restore reproduces the screen for a navigation entry. Roles and the
// catalog are consulted on every call: a product deleted since it was
// pushed falls back to Home, and entries the current session may no
// longer open (admin, affiliate) do the same instead of erroring.
func (m *ShopModel) Restore(e nav.Entry) {
	switch e.Kind {
	case nav.KindProduct:
		if _, err := m.store.FindProduct(e.ProductID); err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				log.Printf("tui: restore product %s: %v", e.ProductID, err)
			}
			m.showHome()
			return
		}
		m.current = e
		m.productID = e.ProductID

	case nav.KindTab:
		if !model.ValidTab(e.Tab) {
			m.showHome()
			return
		}
		m.current = e
		m.productID = ""

	case nav.KindCMS:
		if m.session == nil || !m.session.IsAdmin() {
			m.showHome()
			return
		}
		m.current = e
		m.productID = ""

	case nav.KindAffiliateTab:
		if m.session == nil || !m.session.IsAffiliate() || !model.ValidAffiliateTab(e.Tab) {
			m.showHome()
			return
		}
		m.current = e
		m.affTab = e.Tab
		m.productID = ""
		m.refreshAffiliate()

	default:
		m.showHome()
	}
}

func (m *ShopModel) showHome() {
	m.current = nav.Home()
	m.productID = ""
}

// ShowExitPrompt opens the leave-confirmation dialog.
func (m *ShopModel) ShowExitPrompt() {
	m.PushModal(NewExitModal(m))
}

// HideExitPrompt closes the leave-confirmation dialog if it is open.
func (m *ShopModel) HideExitPrompt() {
	m.PopModalByID(exitModalID)
}
