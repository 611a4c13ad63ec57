package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinybazaar/bazaar/internal/session"
)

var (
	loginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 3)

	loginErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// LoginModal is the sign-in form. On success it pops itself; the screen
// underneath is unchanged, only the session gains a user.
type LoginModal struct {
	shop     *ShopModel
	name     textinput.Model
	password textinput.Model
	focusPwd bool
	errText  string
}

func NewLoginModal(m *ShopModel) *LoginModal {
	name := textinput.New()
	name.Placeholder = "username"
	name.CharLimit = 64
	name.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return &LoginModal{shop: m, name: name, password: password}
}

func (d *LoginModal) ID() string { return "login" }

func (d *LoginModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}

	switch key.String() {
	case "escape", "esc":
		return true, nil

	case "tab", "shift+tab":
		d.focusPwd = !d.focusPwd
		if d.focusPwd {
			d.name.Blur()
			d.password.Focus()
		} else {
			d.password.Blur()
			d.name.Focus()
		}
		return false, nil

	case "enter":
		if !d.focusPwd {
			d.focusPwd = true
			d.name.Blur()
			d.password.Focus()
			return false, nil
		}
		err := d.shop.session.Login(d.name.Value(), d.password.Value())
		if errors.Is(err, session.ErrInvalidCredentials) {
			d.errText = "invalid credentials"
			d.password.SetValue("")
			return false, nil
		}
		if err != nil {
			d.errText = err.Error()
			return false, nil
		}
		return true, nil
	}

	var cmd tea.Cmd
	if d.focusPwd {
		d.password, cmd = d.password.Update(msg)
	} else {
		d.name, cmd = d.name.Update(msg)
	}
	return false, cmd
}

func (d *LoginModal) View(width, height int) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Sign in"),
		"",
		d.name.View(),
		d.password.View(),
	}
	if d.errText != "" {
		lines = append(lines, "", loginErrStyle.Render(d.errText))
	}
	lines = append(lines, "", exitHintStyle.Render("enter submit · tab switch field · esc close"))

	box := loginBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
