package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained overlay that owns its own Update/View lifecycle.
// Modals are managed via a stack on ShopModel — the topmost modal receives
// all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// Action identifies a decoupled model mutation requested by a modal or cmd.
type Action int

const (
	ActionPushModal Action = iota
	ActionReloadCatalog
)

// ActionMsg carries an Action and its payload through the bubbletea loop.
type ActionMsg struct {
	Action  Action
	Payload interface{}
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *ShopModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *ShopModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// PopModalByID removes the named modal wherever it sits on the stack.
func (m *ShopModel) PopModalByID(id string) {
	for i, modal := range m.modalStack {
		if modal.ID() == id {
			m.modalStack = append(m.modalStack[:i], m.modalStack[i+1:]...)
			return
		}
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *ShopModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *ShopModel) HasModal() bool {
	return len(m.modalStack) > 0
}
