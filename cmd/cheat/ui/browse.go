package ui

import (
	"context"
	"fmt"
	"strings"

	"gocheat/internal/logging"
	"gocheat/internal/sheet"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// BrowseModel is the two-pane section browser: a filterable list of sections
// on the left, notes and captured output of the selected one on the right.
type BrowseModel struct {
	width    int
	height   int
	list     list.Model
	viewport viewport.Model

	focusViewport bool

	ctx      context.Context
	runner   *sheet.Runner
	markdown MarkdownFunc
	selected *sheet.Section
	content  string

	// outputs caches captured output by section name
	outputs map[string]string

	styles Styles
}

// sectionItem adapts sheet.Section to list.Item
type sectionItem struct {
	section *sheet.Section
}

func (i sectionItem) Title() string { return fmt.Sprintf("%2d. %s", i.section.Number, i.section.Title) }
func (i sectionItem) Description() string {
	return i.section.Name
}
func (i sectionItem) FilterValue() string {
	return i.section.Name + " " + i.section.Title + " " + i.section.Notes
}

// sectionOutputMsg carries the result of running a section.
type sectionOutputMsg struct {
	name   string
	output string
	err    error
}

// NewBrowseModel creates the browser over every section in reg.
func NewBrowseModel(ctx context.Context, reg *sheet.Registry, runner *sheet.Runner, markdown MarkdownFunc, styles Styles) BrowseModel {
	sections := reg.All()
	items := make([]list.Item, 0, len(sections))
	for _, s := range sections {
		items = append(items, sectionItem{section: s})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Go Cheat Sheet (%d sections)", len(sections))
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Title

	m := BrowseModel{
		list:     l,
		viewport: viewport.New(0, 0),
		ctx:      ctx,
		runner:   runner,
		markdown: markdown,
		outputs:  make(map[string]string),
		styles:   styles,
	}
	m.syncSelection()
	return m
}

// Init initializes the model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd
	filtering := m.list.FilterState() == list.Filtering

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case sectionOutputMsg:
		out := msg.output
		if msg.err != nil {
			out += m.styles.Error.Render("error: "+msg.err.Error()) + "\n"
		}
		m.outputs[msg.name] = out
		if m.selected != nil && m.selected.Name == msg.name {
			m.refresh()
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focusViewport = !m.focusViewport
				return m, nil
			case "y", "c":
				return m, m.copySelected()
			case "enter", "r":
				if m.selected != nil {
					return m, m.runSelected()
				}
				return m, nil
			}
		}
	}

	// Non-key messages go to both panes
	_, isKey := msg.(tea.KeyMsg)
	if !isKey || !m.focusViewport || filtering {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !isKey || (m.focusViewport && !filtering) {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncSelection()
	return m, tea.Batch(cmds...)
}

// runSelected captures the selected section's output off the UI loop.
func (m BrowseModel) runSelected() tea.Cmd {
	s := m.selected
	runner, ctx := m.runner, m.ctx
	return func() tea.Msg {
		logging.Get(logging.CategoryUI).Debug("running section", zap.String("name", s.Name))
		out, err := runner.Capture(ctx, s)
		return sectionOutputMsg{name: s.Name, output: out, err: err}
	}
}

// copySelected puts the captured output on the clipboard, or the notes when
// the section has not been run yet.
func (m BrowseModel) copySelected() tea.Cmd {
	if m.selected == nil {
		return nil
	}
	text, what := m.selected.Notes, "notes"
	if out, ok := m.outputs[m.selected.Name]; ok {
		text, what = out, "output"
	}
	if err := clipboardWriteAll(text); err != nil {
		logging.Get(logging.CategoryUI).Warn("clipboard write failed", zap.Error(err))
		return m.list.NewStatusMessage(m.styles.Error.Render("Failed to copy " + what))
	}
	return m.list.NewStatusMessage(m.styles.Success.Render(fmt.Sprintf("Copied %s of [%s]", what, m.selected.Name)))
}

func (m *BrowseModel) syncSelection() {
	sel, ok := m.list.SelectedItem().(sectionItem)
	if !ok {
		return
	}
	if m.selected == nil || m.selected.Name != sel.section.Name {
		m.selected = sel.section
		m.refresh()
		m.viewport.GotoTop()
	}
}

// refresh rebuilds the right pane for the selected section.
func (m *BrowseModel) refresh() {
	s := m.selected
	parts := []string{
		m.styles.Header.Render(s.Heading()),
		RenderOrRaw(m.markdown, s.Notes),
	}
	if out, ok := m.outputs[s.Name]; ok {
		parts = append(parts, m.styles.Muted.Render("--- Output ---"), out)
	} else {
		parts = append(parts, m.styles.Muted.Render("enter: run this section"))
	}
	m.content = strings.Join(parts, "\n")
	m.viewport.SetContent(m.content)
}

// View renders the page.
func (m BrowseModel) View() string {
	listPaneWidth := int(float64(m.width) * 0.35)
	viewPaneWidth := m.width - listPaneWidth

	focused, blurred := m.styles.Theme.Primary, m.styles.Theme.Border
	listStyle := m.styles.Pane.BorderForeground(focused)
	viewStyle := m.styles.Pane.BorderForeground(blurred)
	if m.focusViewport {
		listStyle = listStyle.BorderForeground(blurred)
		viewStyle = viewStyle.BorderForeground(focused)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Width(max(listPaneWidth-4, 0)).Render(m.list.View()),
		viewStyle.Width(max(viewPaneWidth-4, 0)).Render(m.viewport.View()),
	)
	help := m.styles.Muted.Render(" • enter/r: run • y: copy • tab: focus switch • /: filter • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, main, help)
}

// SetSize updates the size.
func (m *BrowseModel) SetSize(w, h int) {
	m.width = w
	m.height = h

	// Border(2) + Padding(2) per pane; border(2) plus the help line vertically
	const chromeW, chromeH = 4, 3
	paneH := max(h-chromeH, 0)
	listPaneWidth := int(float64(w) * 0.35)
	viewPaneWidth := w - listPaneWidth

	m.list.SetSize(max(listPaneWidth-chromeW, 0), paneH)
	m.viewport.Width = max(viewPaneWidth-chromeW, 0)
	m.viewport.Height = paneH
}

// Browse runs the browser full screen until the user quits.
func Browse(ctx context.Context, m BrowseModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
