package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
	"github.com/msto63/strlab/internal/menu"
)

// View represents different views in the TUI
type View int

const (
	ViewMenu View = iota
	ViewInput
	ViewOutput
)

// Model is the main TUI model
type Model struct {
	// State
	view    View
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	theme Theme

	// Menu state
	table  *menu.Table
	tasks  []menu.Task
	cursor int

	// Output of the last task
	lastInput string
	output    []string
}

// NewModel creates a new TUI model over table
func NewModel(table *menu.Table) Model {
	ti := textinput.New()
	ti.CharLimit = 4000
	ti.Width = 76

	theme := DefaultTheme()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{
		view:     ViewMenu,
		theme:    theme,
		input:    ti,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		table:    table,
		tasks:    table.Tasks(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the task under the cursor
func (m Model) Selected() menu.Task {
	return m.tasks[m.cursor]
}

// CurrentView returns the active view
func (m Model) CurrentView() View {
	return m.view
}

// Output returns the lines of the last task run
func (m Model) Output() []string {
	return m.output
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.view {
		case ViewMenu:
			return m.updateMenu(msg)
		case ViewInput:
			switch msg.String() {
			case "esc":
				m.view = ViewMenu
				m.input.Blur()
				return m, nil
			case "enter":
				if m.loading {
					return m, nil
				}
				m.loading = true
				m.lastInput = m.input.Value()
				return m, tea.Batch(runTask(m.Selected(), m.lastInput), m.spinner.Tick)
			}
		case ViewOutput:
			switch msg.String() {
			case "esc", "enter", "q":
				m.view = ViewMenu
				return m, nil
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.Width = msg.Width - 6
		m.viewport.Height = max(3, msg.Height-10)
		m.input.Width = max(10, msg.Width-10)
		m.updateContent()

	case taskResultMsg:
		m.loading = false
		m.err = msg.err
		m.output = msg.outcome.Lines
		m.view = ViewOutput
		m.input.Blur()
		m.updateContent()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if m.view == ViewInput {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "enter":
		return m.open()
	case "q", "esc":
		return m, tea.Quit
	default:
		for i, task := range m.tasks {
			if task.Key == key {
				m.cursor = i
				return m.open()
			}
		}
	}
	return m, nil
}

// open starts the prompt for the selected task
func (m Model) open() (tea.Model, tea.Cmd) {
	task := m.Selected()
	if task.IsExit() {
		return m, tea.Quit
	}

	m.view = ViewInput
	m.err = nil
	m.input.Reset()
	m.input.Prompt = task.Prompt
	cmd := m.input.Focus()
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.theme.Heading("strlab - String Manipulation Lab"))
	s.WriteString("\n")

	switch m.view {
	case ViewMenu:
		s.WriteString(m.renderMenuView())
	case ViewInput:
		s.WriteString(m.renderInputView())
	case ViewOutput:
		s.WriteString(m.renderOutputView())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderMenuView() string {
	var s strings.Builder

	s.WriteString(m.theme.Section("# List of Tasks"))
	s.WriteString("\n\n")

	for i, task := range m.tasks {
		s.WriteString(m.theme.TaskLine(task.Key, task.Title, i == m.cursor))
		s.WriteString("\n")
	}

	return m.theme.Panel(s.String(), false)
}

func (m *Model) renderInputView() string {
	var s strings.Builder

	s.WriteString(m.theme.Section(m.Selected().Title))
	s.WriteString("\n\n")
	s.WriteString(m.theme.Prompt(m.input.View()))

	if m.loading {
		s.WriteString("\n\n")
		s.WriteString(m.spinner.View())
		s.WriteString(" Running...")
	}

	return m.theme.Panel(s.String(), true)
}

func (m *Model) renderOutputView() string {
	var s strings.Builder

	s.WriteString(m.theme.Section(m.Selected().Title))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())

	return m.theme.Panel(s.String(), false)
}

func (m *Model) renderFooter() string {
	var help string
	switch m.view {
	case ViewMenu:
		help = "Up/Down: Select • Enter or 0-6: Open • Ctrl+C: Quit"
	case ViewInput:
		help = "Enter: Run • Esc: Back • Ctrl+C: Quit"
	case ViewOutput:
		help = "Up/Down: Scroll • Esc: Back • Ctrl+C: Quit"
	}

	return m.theme.Status(help, m.width)
}

func (m *Model) updateContent() {
	var content strings.Builder

	if m.err != nil {
		msg := m.err.Error()
		if e, ok := mdwerror.As(m.err); ok {
			msg = e.Message()
		}
		content.WriteString(m.theme.Failure(msg))
		content.WriteString("\n")
	}
	for _, line := range m.output {
		content.WriteString(m.theme.Result(line))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoTop()
}

// Message types for async operations
type taskResultMsg struct {
	outcome menu.Outcome
	err     error
}

// runTask executes task off the update loop
func runTask(task menu.Task, input string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := task.Run(input)
		return taskResultMsg{outcome: outcome, err: err}
	}
}
