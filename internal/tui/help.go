package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(1, 3)

// HelpModal lists the key bindings, pulled from the KeyMap so help never
// drifts from the actual bindings.
type HelpModal struct {
	shop *ShopModel
}

func NewHelpModal(m *ShopModel) *HelpModal {
	return &HelpModal{shop: m}
}

func (d *HelpModal) ID() string { return "help" }

func (d *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return true, nil
	}
	return false, nil
}

func (d *HelpModal) View(width, height int) string {
	k := d.shop.keys
	bindings := []key.Binding{
		k.Back, k.Enter, k.Up, k.Down, k.NextTab, k.PrevTab,
		k.AddToCart, k.Checkout, k.Currency,
		k.Login, k.Logout, k.Admin, k.Affiliate,
		k.Delete, k.Publish, k.ForceQuit,
	}

	lines := []string{lipgloss.NewStyle().Bold(true).Render("Keys"), ""}
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, dimStyle.Render(h.Desc)))
	}
	lines = append(lines, "", dimStyle.Render("any key closes"))

	box := helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
