package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tabview/internal/session"
	"tabview/internal/tabular"
	"tabview/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateFilePicker state = iota
	stateViewing
	stateError
)

// Config carries the caller-supplied knobs through to the pipeline
// unchanged.
type Config struct {
	Delimiter string
	MaxRows   int
	BatchSize int
}

type Model struct {
	state state
	cfg   Config

	registry    *session.Registry
	doc         *session.Document
	pendingPath string

	filepicker filepicker.Model
	table      table.Model
	search     textinput.Model
	filtering  bool

	headers        []string
	rows           [][]string
	estimatedTotal int
	delimiterName  string
	hasMore        bool
	parseWarnings  int

	err    error
	width  int
	height int
}

type documentLoadedMsg struct {
	doc    *session.Document
	result *types.LoadResult
	err    error
}

type moreRowsMsg struct {
	result *types.MoreResult
	err    error
}

// InitialModel builds the root model. With a non-empty path the picker is
// skipped and the file is opened immediately.
func InitialModel(cfg Config, path string) Model {
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = tabular.DefaultMaxRows
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = tabular.DefaultBatchSize
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = tabular.Auto
	}

	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".tsv"}
	fp.CurrentDirectory, _ = os.Getwd()
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FB8FF"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#7CC9FF"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FB8FF")).Bold(true)

	search := textinput.New()
	search.Prompt = "/"
	search.PromptStyle = FilterPromptStyle
	search.Placeholder = "filter loaded rows"

	return Model{
		state:       stateFilePicker,
		cfg:         cfg,
		registry:    session.NewRegistry(),
		pendingPath: path,
		filepicker:  fp,
		search:      search,
	}
}

func (m Model) Init() tea.Cmd {
	if m.pendingPath != "" {
		return m.openDocument(m.pendingPath)
	}
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		pickerHeight := msg.Height - 10
		if pickerHeight < 5 {
			pickerHeight = 5
		}
		m.filepicker.SetHeight(pickerHeight)

		if m.state == stateViewing {
			m.resizeTable()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateViewing:
			return m.updateViewing(msg)

		case stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case documentLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.doc = msg.doc
		m.headers = msg.result.Headers
		m.rows = msg.result.Rows
		m.estimatedTotal = msg.result.EstimatedTotal
		m.delimiterName = msg.result.Delimiter
		m.hasMore = msg.result.HasMore
		m.parseWarnings = len(msg.result.ParseErrors)
		m.doc.Delivered = len(m.rows)

		m.search.SetValue("")
		m.filtering = false
		m.buildTable()
		m.state = stateViewing
		return m, nil

	case moreRowsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.rows = append(m.rows, msg.result.NewRows...)
		m.hasMore = msg.result.HasMore
		if m.doc != nil {
			m.doc.Delivered = len(m.rows)
		}
		m.refreshRows()
		return m, nil
	}

	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			return m, m.openDocument(path)
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.search.Blur()
			m.search.SetValue("")
			m.refreshRows()
			return m, nil
		case "enter":
			m.filtering = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refreshRows()
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		// Back to the picker; the registry keeps the document attached
		// so re-opening it resumes where the view left off.
		m.state = stateFilePicker
		return m, m.filepicker.Init()
	case "/":
		m.filtering = true
		return m, m.search.Focus()
	case "m":
		if m.hasMore {
			return m, m.loadMore()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) openDocument(path string) tea.Cmd {
	registry, cfg := m.registry, m.cfg
	return func() tea.Msg {
		doc, err := registry.Open(path)
		if err != nil {
			return documentLoadedMsg{err: err}
		}
		result, err := tabular.InitialLoad(doc.Text, cfg.Delimiter, cfg.MaxRows)
		if err != nil {
			return documentLoadedMsg{err: err}
		}
		return documentLoadedMsg{doc: doc, result: result}
	}
}

func (m Model) loadMore() tea.Cmd {
	doc, cfg := m.doc, m.cfg
	return func() tea.Msg {
		result, err := tabular.LoadMore(doc.Text, cfg.Delimiter, doc.Delivered, cfg.BatchSize)
		return moreRowsMsg{result: result, err: err}
	}
}

func (m *Model) buildTable() {
	columns := computeColumns(m.headers, m.rows)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4FB8FF")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = SelectedRowStyle

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(visibleRows(m.rows, m.headers, m.search.Value())),
		table.WithFocused(true),
	)
	m.table.SetStyles(styles)
	m.resizeTable()
}

func (m *Model) refreshRows() {
	m.table.SetRows(visibleRows(m.rows, m.headers, m.search.Value()))
	m.table.GotoTop()
}

func (m *Model) resizeTable() {
	height := m.height - 8
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)
	if m.width > 4 {
		m.table.SetWidth(m.width - 2)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateViewing:
		return m.viewTable()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("tabview"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select a CSV or TSV file to view"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewTable() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render(filepath.Base(m.doc.Path)))
	s.WriteString("\n\n")
	s.WriteString(m.table.View())
	s.WriteString("\n")
	s.WriteString(StatusStyle.Render(m.statusLine()))
	s.WriteString("\n")

	if m.filtering || m.search.Value() != "" {
		s.WriteString(m.search.View())
		s.WriteString("\n")
	}

	help := "↑/↓: scroll • /: filter • esc: back • q: quit"
	if m.hasMore {
		help = "↑/↓: scroll • /: filter • m: load more • esc: back • q: quit"
	}
	s.WriteString(HelpStyle.Render(help))

	return s.String()
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%d of ~%d rows", len(m.rows), m.estimatedTotal)
	if query := m.search.Value(); query != "" {
		status = fmt.Sprintf("%d of %d loaded rows match %q", len(m.table.Rows()), len(m.rows), query)
	}
	status += " • " + m.delimiterName + "-delimited"
	if m.hasMore {
		status += " • more available"
	}
	if m.parseWarnings > 0 {
		status += " • " + WarningStyle.Render(fmt.Sprintf("%d parse warnings", m.parseWarnings))
	}
	return status
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Cannot display file"))
	s.WriteString("\n\n")
	if m.err != nil {
		s.WriteString(m.err.Error())
	}
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}
