package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"splitpane/internal/layoutstore"
	"splitpane/internal/log"
	"splitpane/internal/pty"
	"splitpane/internal/ui"
)

const usageText = `splitpane demo

Drag the dividers with the mouse, or:

  tab / shift+tab   focus a divider
  ← / →             resize the focused vertical divider
  ↑ / ↓             resize the focused horizontal divider
  home              reset the focused divider
  ctrl+c            quit

The bottom pane is a live shell; it receives keys while
no divider holds focus. Split ratios persist across runs.`

type noteItem struct {
	title string
	desc  string
}

func (n noteItem) Title() string       { return n.title }
func (n noteItem) Description() string { return n.desc }
func (n noteItem) FilterValue() string { return n.title }

// appModel hosts the split layout and the three content panes.
type appModel struct {
	split *ui.SplitLayoutView
	notes list.Model
	doc   viewport.Model
	shell *ui.ShellPane
	help  help.Model
}

func newAppModel() *appModel {
	store, err := layoutstore.NewFileStore()
	var s layoutstore.Store = store
	if err != nil {
		// No home dir: keep the layout working in-memory for the session.
		log.WarningLog.Printf("file store unavailable: %v", err)
		s = layoutstore.NewMemStore()
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ColorHighlight)).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ColorMuted))
	delegate.Styles.NormalDesc = delegate.Styles.NormalTitle

	items := []list.Item{
		noteItem{title: "top-left", desc: "list pane"},
		noteItem{title: "top-right", desc: "doc pane"},
		noteItem{title: "bottom", desc: "shell pane"},
		noteItem{title: "vertical divider", desc: "splits the top band"},
		noteItem{title: "horizontal divider", desc: "splits top from bottom"},
	}
	notes := list.New(items, delegate, 0, 0)
	notes.Title = "Regions"
	notes.SetShowStatusBar(false)
	notes.SetFilteringEnabled(false)
	notes.SetShowHelp(false)
	notes.DisableQuitKeybindings()
	notes.Styles.Title = ui.Styles.Title

	doc := viewport.New(0, 0)
	doc.SetContent(usageText)

	shell := ui.NewShellPane(&pty.CreackPTY{}, "")

	m := &appModel{
		notes: notes,
		doc:   doc,
		shell: shell,
		help:  help.New(),
	}
	m.split = ui.New(ui.Config{
		StorageKey: "demo",
		TopLeft:    func() string { return m.notes.View() },
		TopRight:   func() string { return m.doc.View() },
		Bottom:     func() string { return m.shell.View() },
	}, s)
	return m
}

// Init implements tea.Model.
func (m *appModel) Init() tea.Cmd {
	return m.shell.Init()
}

// Update implements tea.Model.
func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve the last row for the help footer.
		m.split.SetSize(msg.Width, msg.Height-1)
		m.fitContent()
		return m, nil
	case tea.MouseMsg:
		m.split.HandleMouse(msg)
		m.fitContent()
		return m, nil
	case ui.ShellOutputMsg:
		return m, m.shell.HandleOutput(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.split.HandleKey(msg) {
			m.fitContent()
			return m, nil
		}
		if m.split.Focus().Current == ui.HandleContent {
			m.shell.HandleKey(msg)
			return m, nil
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

// fitContent sizes the three panes to the current regions.
func (m *appModel) fitContent() {
	r := m.split.Regions()
	m.notes.SetSize(r.TopLeft.W, r.TopLeft.H)
	m.doc.Width = r.TopRight.W
	m.doc.Height = r.TopRight.H
	m.shell.Resize(r.Bottom.W, r.Bottom.H)
}

// View implements tea.Model.
func (m *appModel) View() string {
	return m.split.View() + "\n" + m.help.View(m.split.Keys())
}

func main() {
	log.Initialize()
	defer log.Close()

	m := newAppModel()
	defer m.shell.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
