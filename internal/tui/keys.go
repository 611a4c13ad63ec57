package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all storefront key bindings with built-in help text.
type KeyMap struct {
	// Global
	ForceQuit key.Binding
	Back      key.Binding
	Help      key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	// Actions
	AddToCart key.Binding
	Checkout  key.Binding
	Login     key.Binding
	Logout    key.Binding
	Admin     key.Binding
	Affiliate key.Binding
	Currency  key.Binding
	Delete    key.Binding
	Publish   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),

		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to cart"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy / checkout"),
		),
		Login: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "sign in"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "sign out"),
		),
		Admin: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "content admin"),
		),
		Affiliate: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "affiliate dashboard"),
		),
		Currency: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle currency"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Publish: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle publish"),
		),
	}
}
