package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"gocp/internal/schema"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the path header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// cursorStyle defines the style for the highlighted entry row.
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// dirStyle defines the style for directory entry names.
	dirStyle = lipgloss.NewStyle().
			Bold(true)

	// statusStyle defines the style for the status line.
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help footer.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// TeaModel is the principal [tea.Model] for the interactive browser.
type TeaModel struct {
	uiHandler *Handler
	keys      KeyMap

	currentPath string
	entries     []schema.Entry
	cursor      int
	viewTop     int

	showHidden bool
	status     string
	width      int
	height     int
}

// NewTeaModel returns an initial new [TeaModel], rooted at startDir.
func NewTeaModel(uiHandler *Handler, startDir string) TeaModel {
	model := TeaModel{
		uiHandler:   uiHandler,
		keys:        DefaultKeyMap(),
		currentPath: startDir,
		width:       100,
		height:      30,
	}
	model.loadEntries()

	return model
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return nil
}

// loadEntries re-enumerates the current directory into the model.
func (m *TeaModel) loadEntries() {
	entries, err := m.uiHandler.fsOps.Entries(m.currentPath)
	if err != nil {
		m.entries = nil
		m.status = fmt.Sprintf("cannot open directory: %v", err)

		return
	}

	if !m.showHidden {
		visible := entries[:0]
		for _, entry := range entries {
			if !strings.HasPrefix(entry.Name, ".") {
				visible = append(visible, entry)
			}
		}
		entries = visible
	}

	m.entries = entries
	m.cursor = 0
	m.viewTop = 0
	m.status = fmt.Sprintf("%d items", len(entries))
}

// Update handles messages within a [tea.Program].
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Enter):
			if m.cursor < len(m.entries) {
				entry := m.entries[m.cursor]
				if entry.Metadata.IsDir {
					m.currentPath = entry.Path
					m.loadEntries()
				} else {
					m.status = fmt.Sprintf("%s (%s)", entry.Path, SizeString(entry.Metadata))
				}
			}

		case key.Matches(msg, m.keys.Back):
			parent := filepath.Dir(m.currentPath)
			if parent != m.currentPath {
				m.currentPath = parent
				m.loadEntries()
			}

		case key.Matches(msg, m.keys.Toggle):
			m.showHidden = !m.showHidden
			m.loadEntries()
		}

		m.ensureCursorVisible()
	}

	return m, nil
}

// visibleRows returns the number of entry rows that fit the screen.
func (m *TeaModel) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}

	return rows
}

func (m *TeaModel) ensureCursorVisible() {
	rows := m.visibleRows()

	if m.cursor < m.viewTop {
		m.viewTop = m.cursor
	}
	if m.cursor >= m.viewTop+rows {
		m.viewTop = m.cursor - rows + 1
	}
}

// View renders the model within a [tea.Program].
func (m TeaModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" "+m.currentPath+" ") + "\n")

	rows := m.visibleRows()
	end := min(m.viewTop+rows, len(m.entries))

	for i := m.viewTop; i < end; i++ {
		entry := m.entries[i]

		name := entry.Name
		if entry.Metadata.IsDir {
			name = dirStyle.Render(name + "/")
		}

		line := fmt.Sprintf("%-10s %10s  %s",
			PermString(entry.Metadata),
			SizeString(entry.Metadata),
			name,
		)

		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line + "\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("(empty directory)") + "\n")
	}

	b.WriteString(statusStyle.Render(m.status) + "\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter open · backspace parent · . hidden · q quit"))

	return b.String()
}

// SizeString renders an entry size for display, with directories shown as
// <DIR> rather than a meaningless byte count.
func SizeString(m *schema.Metadata) string {
	if m.IsDir {
		return "<DIR>"
	}

	return humanize.Bytes(uint64(m.Size))
}
