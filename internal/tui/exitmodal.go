package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const exitModalID = "exit-confirm"

var (
	exitBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 3)

	exitTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	exitHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ExitModal asks whether to leave the shop. It never pops itself: the
// navigation controller opens and closes it through the prompter calls,
// so the dialog state and the guard flags cannot drift apart.
type ExitModal struct {
	shop *ShopModel
}

func NewExitModal(m *ShopModel) *ExitModal {
	return &ExitModal{shop: m}
}

func (d *ExitModal) ID() string { return exitModalID }

func (d *ExitModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch key.String() {
	case "y", "enter":
		d.shop.nav.ConfirmExit()
	case "n", "escape", "esc":
		d.shop.nav.CancelExit()
	}
	return false, nil
}

func (d *ExitModal) View(width, height int) string {
	box := exitBoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		exitTitleStyle.Render("Leave the shop?"),
		"",
		"Your cart is kept only for this visit.",
		"",
		exitHintStyle.Render("y/enter leave · n/esc stay"),
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
