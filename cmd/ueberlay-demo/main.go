// ABOUTME: Demo image browser: fuzzy-filterable file list with ueberzug overlays
// ABOUTME: Wires Container/Image widgets into a Bubble Tea program end to end

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
	"golang.org/x/term"

	"github.com/mauromedda/ueberlay/internal/config"
	"github.com/mauromedda/ueberlay/internal/log"
	"github.com/mauromedda/ueberlay/pkg/overlay"
	"github.com/mauromedda/ueberlay/pkg/overlay/btea"
	"github.com/mauromedda/ueberlay/pkg/overlay/imgdim"
	"github.com/mauromedda/ueberlay/pkg/overlay/ueberzug"
)

const listWidth = 32

var (
	listStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

// paneLayout is the mutable layout the chain func reads each redraw pass.
type paneLayout struct {
	imagePane overlay.Rect
}

type model struct {
	dir    string
	files  []string
	filter string
	cursor int

	width  int
	height int

	layout    *paneLayout
	container *overlay.Container
	img       *overlay.Image
	caption   *glamour.TermRenderer
}

func newModel(dir string, files []string, c *overlay.Container, layout *paneLayout) model {
	caption, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(listWidth-4),
	)
	if err != nil {
		caption = nil
	}
	return model{
		dir:       dir,
		files:     files,
		layout:    layout,
		container: c,
		caption:   caption,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) matches() []string {
	if m.filter == "" {
		return m.files
	}
	ranked := fuzzy.Find(m.filter, m.files)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Str
	}
	return out
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		m.syncSelection()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			m.syncSelection()
		case "down":
			if m.cursor < len(m.matches())-1 {
				m.cursor++
			}
			m.syncSelection()
		case "backspace":
			if m.filter != "" {
				m.filter = m.filter[:len(m.filter)-1]
				m.cursor = 0
				m.syncSelection()
			}
		default:
			if len(msg.String()) == 1 {
				m.filter += msg.String()
				m.cursor = 0
				m.syncSelection()
			}
		}
	}
	return m, nil
}

// relayout recomputes the image pane rectangle from the window size.
func (m *model) relayout() {
	m.layout.imagePane = overlay.NewRect(listWidth+2, 1, max(m.width-listWidth-4, 0), max(m.height-2, 0))
}

// syncSelection points the single placement at the selected file, sized to
// its probed aspect ratio, batched so one commit covers hide+move+show.
func (m *model) syncSelection() {
	matches := m.matches()
	_ = m.container.Batch(func() error {
		if m.cursor >= len(matches) {
			m.img.Hide()
			return nil
		}
		path := filepath.Join(m.dir, matches[m.cursor])
		if m.img.Payload() != path {
			// Payloads are immutable per placement: swap widgets.
			m.container.Detach(m.img)
			m.img = overlay.NewImage(path)
			if err := m.container.Attach(m.img, m.chainFunc()); err != nil {
				return err
			}
		}
		pane := m.layout.imagePane
		size := overlay.Size{Width: pane.Width, Height: pane.Height}
		if w, h, err := imgdim.ProbeFile(path); err == nil {
			if fitted, err := imgdim.CellsFor(w, h, pane.Width, pane.Height); err == nil {
				size = fitted
			}
		}
		m.img.Move(overlay.NewRect(0, 0, size.Width, size.Height))
		m.img.Show()
		return nil
	})
}

// chainFunc reports the image pane as the placement's sole ancestor.
func (m *model) chainFunc() overlay.ChainFunc {
	layout := m.layout
	return func() (overlay.Chain, bool) {
		pane := layout.imagePane
		if pane.Empty() {
			return nil, false
		}
		return overlay.Chain{{
			Origin: pane.Origin(),
			Clip:   overlay.NewRect(0, 0, pane.Width, pane.Height),
		}}, true
	}
}

func (m model) View() string {
	matches := m.matches()
	var rows []string
	rows = append(rows, dimStyle.Render("filter: ")+m.filter+"▌")
	visible := max(m.height-6, 1)
	for i, name := range matches {
		if i >= visible {
			break
		}
		label := runewidth.Truncate(name, listWidth-4, "…")
		if i == m.cursor {
			label = selectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		rows = append(rows, label)
	}
	if len(matches) == 0 {
		rows = append(rows, dimStyle.Render("  no matches"))
	}
	rows = append(rows, "", m.captionFor(matches))

	return listStyle.Width(listWidth).Render(strings.Join(rows, "\n"))
}

// captionFor renders a small markdown caption for the selected file.
func (m model) captionFor(matches []string) string {
	if m.cursor >= len(matches) || m.caption == nil {
		return ""
	}
	name := matches[m.cursor]
	md := fmt.Sprintf("**%s**", name)
	if w, h, err := imgdim.ProbeFile(filepath.Join(m.dir, name)); err == nil {
		md += fmt.Sprintf("\n\n_%d × %d px_", w, h)
	}
	rendered, err := m.caption.Render(md)
	if err != nil {
		return name
	}
	return strings.TrimSpace(rendered)
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	log.SetLevel(cfg.Level())

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	files, err := listImages(dir)
	if err != nil {
		return err
	}

	var disp overlay.Dispatcher
	client, err := ueberzug.Launch(context.Background(),
		ueberzug.WithBinary(cfg.Renderer),
		ueberzug.WithScaler(cfg.Scaler),
		ueberzug.WithDrawingMoment(cfg.Moment()),
	)
	if err != nil {
		log.Warn("renderer unavailable, running without overlays: %v", err)
		disp = ueberzug.NewWriterClient(io.Discard)
	} else {
		disp = client
		defer client.Close()
	}

	container := overlay.NewContainer(disp)
	defer container.Close()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		container.SetRootSize(w, h)
	}

	layout := &paneLayout{}
	m := newModel(dir, files, container, layout)
	m.img = overlay.NewImage("")
	if err := container.Attach(m.img, m.chainFunc()); err != nil {
		return err
	}
	m.img.Hide()

	p := tea.NewProgram(btea.Wrap(m, container), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ueberlay-demo:", err)
		os.Exit(1)
	}
}
