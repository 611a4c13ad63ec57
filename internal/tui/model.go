// Package tui implements the terminal storefront: a tabbed shop over the
// local catalog with screen-stack navigation, where Esc is the physical
// back action and leaving the floor asks for confirmation first.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinybazaar/bazaar/internal/currency"
	"github.com/tinybazaar/bazaar/internal/model"
	"github.com/tinybazaar/bazaar/internal/nav"
	"github.com/tinybazaar/bazaar/internal/session"
)

// CatalogState holds the loaded catalog shown across tabs. Posts include
// unpublished drafts; the storefront filters, the admin screen does not.
type CatalogState struct {
	products   []model.Product
	categories []model.Category
	banners    []model.Banner
	posts      []model.Post
	featured   []model.Product
}

func (c *CatalogState) publishedPosts() []model.Post {
	out := make([]model.Post, 0, len(c.posts))
	for _, p := range c.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

// ScreenState holds what the main area currently shows. It mirrors the
// navigation controller's top entry and is only written by Restore and
// the user-driven open* helpers.
type ScreenState struct {
	current   nav.Entry
	productID string // set when current is a product view

	shopCursor  int
	homeCursor  int
	cartCursor  int
	adminCursor int
	affTab      string
}

// CartLine is one product with a quantity in the in-memory cart.
type CartLine struct {
	ProductID string
	Quantity  int
}

// ShopModel is the main TUI model.
type ShopModel struct {
	CatalogState
	ScreenState

	keys       KeyMap
	width      int
	height     int
	modalStack []Modal

	nav     *nav.Controller
	history *nav.LinearHistory

	store     model.Store
	session   *session.Session
	converter *currency.Converter

	// Display currency, cycled with 'm'. Always one of converter.Currencies().
	displayCurrency string

	cart      []CartLine
	affiliate AffiliateState

	// refCode is the affiliate code this run arrived through, attached to
	// every order placed at checkout.
	refCode string

	lastError string
	quitting  bool
}

// catalogLoadedMsg carries a full catalog refresh back into the model.
type catalogLoadedMsg struct {
	catalog CatalogState
	err     error
}

// checkoutDoneMsg reports the outcome of a checkout.
type checkoutDoneMsg struct {
	orders int
	err    error
}

// Options configures a ShopModel.
type Options struct {
	Store     model.Store
	Session   *session.Session
	Converter *currency.Converter
	// Fragment is the startup deep link, e.g. "product-p1" from a
	// referral redirect. Empty means a plain start on Home.
	Fragment string
	// RefCode is the affiliate code attached to orders placed this run.
	RefCode string
}

// NewShopModel wires the storefront model to its navigation controller.
// The model itself is both the view restorer and the exit prompter.
func NewShopModel(opts Options) *ShopModel {
	m := &ShopModel{
		keys:      DefaultKeyMap(),
		store:     opts.Store,
		session:   opts.Session,
		converter: opts.Converter,
		refCode:   opts.RefCode,
		ScreenState: ScreenState{
			current: nav.Home(),
			affTab:  model.AffiliateTabOverview,
		},
	}
	if m.converter == nil {
		m.converter = currency.New(model.DefaultBaseCurrency, nil)
	}
	m.displayCurrency = m.converter.Base()

	m.history = nav.NewLinearHistory()
	if opts.Fragment != "" {
		m.history.SetFragment(opts.Fragment)
	}
	m.nav = nav.NewController(m.history, m, m, func() { m.quitting = true })

	if m.session != nil {
		m.session.OnLogout(func() {
			m.nav.Reset()
			m.Restore(nav.Home())
		})
	}

	return m
}

// Init loads the catalog and seeds the navigation floor.
func (m *ShopModel) Init() tea.Cmd {
	m.nav.Bootstrap()
	return m.loadCatalogCmd()
}

// Nav exposes the navigation controller, used by tests and the exit modal.
func (m *ShopModel) Nav() *nav.Controller { return m.nav }

// History exposes the in-process history host.
func (m *ShopModel) History() *nav.LinearHistory { return m.history }

func (m *ShopModel) loadCatalogCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		var c CatalogState
		var err error

		if c.products, err = store.ListProducts(""); err != nil {
			return catalogLoadedMsg{err: err}
		}
		if c.categories, err = store.ListCategories(); err != nil {
			return catalogLoadedMsg{err: err}
		}
		if c.banners, err = store.ActiveBanners(); err != nil {
			return catalogLoadedMsg{err: err}
		}
		if c.posts, err = store.ListPosts(false); err != nil {
			return catalogLoadedMsg{err: err}
		}
		if c.featured, err = store.FeaturedProducts(6); err != nil {
			return catalogLoadedMsg{err: err}
		}
		return catalogLoadedMsg{catalog: c}
	}
}

// findProduct looks an id up in the loaded catalog.
func (m *ShopModel) findProduct(id string) (model.Product, bool) {
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// cartAdd increments the quantity for a product, appending a new line on
// first add.
func (m *ShopModel) cartAdd(productID string) {
	for i := range m.cart {
		if m.cart[i].ProductID == productID {
			m.cart[i].Quantity++
			return
		}
	}
	m.cart = append(m.cart, CartLine{ProductID: productID, Quantity: 1})
}

func (m *ShopModel) cartTotalCents() int64 {
	var total int64
	for _, line := range m.cart {
		if p, ok := m.findProduct(line.ProductID); ok {
			total += p.PriceCents * int64(line.Quantity)
		}
	}
	return total
}

// cycleCurrency advances the display currency through the converter's
// known codes.
func (m *ShopModel) cycleCurrency() {
	codes := m.converter.Currencies()
	if len(codes) < 2 {
		return
	}
	idx := 0
	for i, code := range codes {
		if code == m.displayCurrency {
			idx = i
			break
		}
	}
	m.displayCurrency = codes[(idx+1)%len(codes)]
}

// shopProducts returns the products shown on the shop tab, newest first
// as loaded.
func (m *ShopModel) shopProducts() []model.Product {
	return m.products
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
