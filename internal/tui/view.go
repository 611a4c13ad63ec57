package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinybazaar/bazaar/internal/cms"
	"github.com/tinybazaar/bazaar/internal/model"
	"github.com/tinybazaar/bazaar/internal/nav"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("8"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4"))

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	bannerStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	sectionMargin = lipgloss.NewStyle().MarginTop(1)
)

// View renders the storefront.
func (m *ShopModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Opening shop..."
	}

	// Modal on the stack renders full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	sections := []string{m.renderTabBar()}

	switch m.current.Kind {
	case nav.KindProduct:
		sections = append(sections, m.renderProduct())
	case nav.KindCMS:
		sections = append(sections, m.renderAdmin())
	case nav.KindAffiliateTab:
		sections = append(sections, m.renderAffiliate())
	case nav.KindTab:
		switch m.current.Tab {
		case model.TabShop:
			sections = append(sections, m.renderShop())
		case model.TabCart:
			sections = append(sections, m.renderCart())
		case model.TabAccount:
			sections = append(sections, m.renderAccount())
		default:
			sections = append(sections, m.renderHome())
		}
	default:
		sections = append(sections, m.renderHome())
	}

	sections = append(sections, m.renderStatusLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ShopModel) renderTabBar() string {
	cur := m.currentTabName()
	onTab := m.current.Kind == nav.KindHome || m.current.Kind == nav.KindTab

	var tabs []string
	for _, name := range model.TopTabs {
		label := tabLabel(name)
		if name == model.TabCart && len(m.cart) > 0 {
			label = fmt.Sprintf("%s (%d)", label, len(m.cart))
		}
		if onTab && name == cur {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func tabLabel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func (m *ShopModel) renderStatusLine() string {
	parts := []string{m.displayCurrency}

	if m.session != nil {
		if u, ok := m.session.User(); ok {
			parts = append(parts, fmt.Sprintf("%s (%s)", u.Name, u.Role))
		} else {
			parts = append(parts, "guest · l sign in")
		}
	}
	parts = append(parts, "esc back · ? help")

	line := dimStyle.Render(strings.Join(parts, "  │  "))
	if m.lastError != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", errStyle.Render(m.lastError))
	}
	return sectionMargin.Render(line)
}

func (m *ShopModel) renderHome() string {
	var parts []string

	for _, b := range m.banners {
		parts = append(parts, bannerStyle.Render(b.Title))
	}

	parts = append(parts, sectionMargin.Render(titleStyle.Render("Featured")))
	if len(m.featured) == 0 {
		parts = append(parts, dimStyle.Render("  nothing featured yet"))
	}
	for i, p := range m.featured {
		parts = append(parts, m.renderProductLine(p, i == m.homeCursor))
	}

	posts := m.publishedPosts()
	if len(posts) > 0 {
		parts = append(parts, sectionMargin.Render(titleStyle.Render("From the blog")))
		for _, post := range posts {
			parts = append(parts, fmt.Sprintf("  %s %s", post.Title,
				dimStyle.Render(cms.Excerpt(post.Body, 60))))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ShopModel) renderShop() string {
	parts := []string{titleStyle.Render("Shop")}

	products := m.shopProducts()
	if len(products) == 0 {
		parts = append(parts, dimStyle.Render("  the shelves are empty"))
	}
	for i, p := range products {
		parts = append(parts, m.renderProductLine(p, i == m.shopCursor))
	}
	parts = append(parts, sectionMargin.Render(dimStyle.Render("enter open · a add to cart")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ShopModel) renderProductLine(p model.Product, selected bool) string {
	marker := "  "
	name := p.Name
	if selected {
		marker = cursorStyle.Render("> ")
		name = cursorStyle.Render(name)
	}
	price := priceStyle.Render(m.converter.Format(p.PriceCents, m.displayCurrency))
	return fmt.Sprintf("%s%s  %s", marker, name, price)
}

func (m *ShopModel) renderProduct() string {
	p, ok := m.findProduct(m.productID)
	if !ok {
		// Catalog changed since Restore validated; one line, Esc goes back.
		return dimStyle.Render("This product is no longer available.")
	}

	parts := []string{
		titleStyle.Render(p.Name),
		priceStyle.Render(m.converter.Format(p.PriceCents, m.displayCurrency)),
		"",
		p.Description,
	}
	if p.ImageURL != "" {
		parts = append(parts, dimStyle.Render(p.ImageURL))
	}
	parts = append(parts, sectionMargin.Render(dimStyle.Render("a add to cart · esc back")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ShopModel) renderCart() string {
	parts := []string{titleStyle.Render("Cart")}

	if len(m.cart) == 0 {
		parts = append(parts, dimStyle.Render("  your cart is empty"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for i, line := range m.cart {
		p, ok := m.findProduct(line.ProductID)
		if !ok {
			continue
		}
		marker := "  "
		if i == m.cartCursor {
			marker = cursorStyle.Render("> ")
		}
		parts = append(parts, fmt.Sprintf("%s%dx %s  %s", marker, line.Quantity, p.Name,
			priceStyle.Render(m.converter.Format(p.PriceCents*int64(line.Quantity), m.displayCurrency))))
	}

	parts = append(parts,
		sectionMargin.Render(fmt.Sprintf("Total: %s",
			priceStyle.Render(m.converter.Format(m.cartTotalCents(), m.displayCurrency)))),
		dimStyle.Render("b checkout"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ShopModel) renderAccount() string {
	parts := []string{titleStyle.Render("Account")}

	if m.session == nil {
		parts = append(parts, dimStyle.Render("  accounts are unavailable"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	u, ok := m.session.User()
	if !ok {
		parts = append(parts,
			"  You are browsing as a guest.",
			dimStyle.Render("  enter/l sign in"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts,
		fmt.Sprintf("  Signed in as %s", cursorStyle.Render(u.Name)),
		fmt.Sprintf("  Role: %s", u.Role))
	if u.AffiliateCode != "" {
		parts = append(parts, fmt.Sprintf("  Affiliate code: %s", u.AffiliateCode),
			dimStyle.Render("  f open affiliate dashboard"))
	}
	if m.session.IsAdmin() {
		parts = append(parts, dimStyle.Render("  c open content admin"))
	}
	parts = append(parts, dimStyle.Render("  L sign out"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ShopModel) renderAdmin() string {
	parts := []string{titleStyle.Render("Content admin")}

	parts = append(parts, sectionMargin.Render(dimStyle.Render("Products")))
	for i, p := range m.products {
		marker := "  "
		name := p.Name
		if i == m.adminCursor {
			marker = cursorStyle.Render("> ")
			name = cursorStyle.Render(name)
		}
		parts = append(parts, fmt.Sprintf("%s%s  %s", marker, name,
			priceStyle.Render(m.converter.Format(p.PriceCents, m.converter.Base()))))
	}

	parts = append(parts, sectionMargin.Render(dimStyle.Render("Posts")))
	for i, post := range m.posts {
		marker := "  "
		title := post.Title
		if len(m.products)+i == m.adminCursor {
			marker = cursorStyle.Render("> ")
			title = cursorStyle.Render(title)
		}
		state := "draft"
		if post.Published {
			state = "published"
		}
		parts = append(parts, fmt.Sprintf("%s%s  %s", marker, title, dimStyle.Render(state)))
	}

	parts = append(parts, sectionMargin.Render(dimStyle.Render("d delete product · p toggle publish · esc back")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
