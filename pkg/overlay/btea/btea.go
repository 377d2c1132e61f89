// ABOUTME: Bubble Tea integration: wraps a tea.Model to drive Container redraws
// ABOUTME: View triggers the redraw hook; WindowSizeMsg feeds the root geometry

package btea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/ueberlay/pkg/overlay"
)

// Model wraps an inner tea.Model and keeps a Container's placements
// synchronized with the program's redraw cycle. Every View call is one
// redraw pass: the inner view is produced first, so chain funcs observe the
// layout that is about to hit the screen, then the container resolves,
// diffs and commits.
type Model struct {
	Inner     tea.Model
	Container *overlay.Container
}

// Wrap pairs an inner model with the container whose placements follow it.
func Wrap(inner tea.Model, c *overlay.Container) Model {
	return Model{Inner: inner, Container: c}
}

// Init delegates to the inner model.
func (m Model) Init() tea.Cmd {
	return m.Inner.Init()
}

// Update feeds window sizes to the container root and delegates the message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.Container.SetRootSize(ws.Width, ws.Height)
	}
	inner, cmd := m.Inner.Update(msg)
	m.Inner = inner
	return m, cmd
}

// View renders the inner model, then runs the container's redraw pass.
func (m Model) View() string {
	view := m.Inner.View()
	m.Container.Redraw()
	return view
}
