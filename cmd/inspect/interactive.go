package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/javabin/jclass"
	"github.com/javabin/jclass/classfile"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectMethod modelState = iota
	stateShowMethod
)

type inspectModel struct {
	err      error
	cf       *classfile.ClassFile
	filename string
	header   string
	filter   textinput.Model
	visible  []int
	selected int
	state    modelState
	filtered bool
}

type loadedMsg struct {
	err error
	cf  *classfile.ClassFile
}

func newInspectModel(filename string) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "method name"
	ti.Prompt = "/ "
	ti.Width = 40
	return &inspectModel{
		filename: filename,
		filter:   ti,
		state:    stateSelectMethod,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return m.loadClass
}

func (m *inspectModel) loadClass() tea.Msg {
	cf, err := jclass.Open(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{cf: cf}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtered && m.state == stateSelectMethod {
			switch msg.String() {
			case "enter", "esc":
				m.filtered = false
				m.filter.Blur()
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectMethod && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMethod && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			// Filtering needs a loaded class; the load runs async from Init.
			if m.state == stateSelectMethod && m.cf != nil {
				m.filtered = true
				m.filter.Focus()
			}

		case "enter":
			if m.state == stateSelectMethod && len(m.visible) > 0 {
				m.state = stateShowMethod
			}

		case "esc":
			if m.state == stateShowMethod {
				m.state = stateSelectMethod
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cf = msg.cf
		m.header = classHeader(msg.cf)
		m.applyFilter()
	}

	return m, nil
}

func (m *inspectModel) applyFilter() {
	if m.cf == nil {
		return
	}
	m.visible = m.visible[:0]
	needle := strings.ToLower(m.filter.Value())
	for i := range m.cf.Methods {
		if needle == "" || strings.Contains(strings.ToLower(m.cf.Methods[i].Name.Value), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func classHeader(cf *classfile.ClassFile) string {
	name, err := cf.ClassName()
	if err != nil {
		name = "?"
	}
	return fmt.Sprintf("%s  %s  %d methods, %d fields",
		name, classfile.JavaRelease(cf.MajorVersion), len(cf.Methods), len(cf.Fields))
}

func (m *inspectModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.cf == nil {
		return "Loading class file..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Class Inspector"))
	b.WriteString(" ")
	b.WriteString(m.header)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectMethod:
		if m.filtered {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		for row, i := range m.visible {
			line := m.formatMethod(&m.cf.Methods[i])
			if row == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no methods match"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • q quit"))

	case stateShowMethod:
		method := &m.cf.Methods[m.visible[m.selected]]
		b.WriteString(m.formatMethod(method))
		b.WriteString("\n\n")
		b.WriteString(detailStyle.Render(methodDetail(method)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func (m *inspectModel) formatMethod(method *classfile.Method) string {
	flags := strings.Join(classfile.MethodFlagNames(method.AccessFlags), " ")
	line := methodStyle.Render(method.Name.Value) + " " + descStyle.Render(method.Descriptor.Value)
	if flags != "" {
		line = flags + " " + line
	}
	return line
}

func methodDetail(method *classfile.Method) string {
	code := method.Code()
	if code == nil {
		return "no Code attribute"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "max_stack %d, max_locals %d, %d code bytes",
		code.MaxStack, code.MaxLocals, len(code.Code))
	for _, h := range code.ExceptionTable {
		catch := "any"
		if !h.CatchAll() {
			catch = fmt.Sprintf("#%d", h.CatchType)
		}
		fmt.Fprintf(&b, "\nhandler [%d, %d) -> %d catch %s", h.StartPC, h.EndPC, h.HandlerPC, catch)
	}
	for _, attr := range code.Attributes {
		fmt.Fprintf(&b, "\nattribute %s", attr.AttributeName())
	}
	return b.String()
}

func runInteractive(filename string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newInspectModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
