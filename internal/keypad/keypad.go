// Package keypad implements a terminal calculator with an expression box, a
// result line, and a grid of keys that can be pressed from the keyboard.
package keypad

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/evaluator"
	"github.com/zephyrtronium/evaluator/internal/console"
)

// Keys is the layout of the keypad, by row.
var Keys = [][]string{
	{"7", "8", "9", "+"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "/"},
	{"0", ".", "(", ")"},
	{"Del", "Clr", "*", "^"},
	{"="},
}

type focus int

const (
	focusInput focus = iota
	focusKeys
)

// Model is the bubbletea model of the calculator.
type Model struct {
	input    textinput.Model
	result   string
	focus    focus
	row, col int
	quitting bool
}

// New creates a calculator with the expression box focused.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "2^(1+2)"
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = keyWidth*4 + 2
	ti.Focus()
	return Model{input: ti}
}

// Expr returns the current expression text.
func (m Model) Expr() string {
	return m.input.Value()
}

// Result returns the text of the result line.
func (m Model) Result() string {
	return m.result
}

// Selected returns the label of the highlighted key.
func (m Model) Selected() string {
	return Keys[m.row][m.col]
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyCtrlL:
		return m.press("Clr"), nil
	case tea.KeyTab:
		if m.focus == focusInput {
			m.focus = focusKeys
			m.input.Blur()
			return m, nil
		}
		m.focus = focusInput
		return m, m.input.Focus()
	}
	if m.focus == focusKeys {
		switch key.Type {
		case tea.KeyUp:
			m.move(-1, 0)
		case tea.KeyDown:
			m.move(1, 0)
		case tea.KeyLeft:
			m.move(0, -1)
		case tea.KeyRight:
			m.move(0, 1)
		case tea.KeyEnter, tea.KeySpace:
			m = m.press(m.Selected())
		case tea.KeyBackspace:
			m = m.press("Del")
		case tea.KeyRunes:
			m = m.insert(string(key.Runes))
		}
		return m, nil
	}
	if key.Type == tea.KeyEnter {
		return m.press("="), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// move moves the highlighted key, staying within the grid.
func (m *Model) move(dr, dc int) {
	m.row = clamp(m.row+dr, 0, len(Keys)-1)
	m.col = clamp(m.col+dc, 0, len(Keys[m.row])-1)
}

func clamp(x, lo, hi int) int {
	return max(lo, min(x, hi))
}

// press applies a key of the keypad.
func (m Model) press(label string) Model {
	switch label {
	case "Del":
		v := []rune(m.input.Value())
		if len(v) > 0 {
			v = v[:len(v)-1]
		}
		m.input.SetValue(string(v))
	case "Clr":
		m.input.SetValue("")
		m.result = ""
	case "=":
		m.result = evaluate(m.input.Value())
	default:
		return m.insert(label)
	}
	m.input.CursorEnd()
	return m
}

func (m Model) insert(s string) Model {
	m.input.SetValue(m.input.Value() + s)
	m.input.CursorEnd()
	return m
}

func evaluate(src string) string {
	r, err := evaluator.EvalString(src)
	if err != nil {
		return console.Invalid
	}
	return fmt.Sprintf("%g", r)
}

const keyWidth = 7

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D2D6DC")).
			Padding(1, 2)
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D2D6DC")).
			Padding(0, 1).
			MarginBottom(1)
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
	keyStyle = lipgloss.NewStyle().
			Width(keyWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("#212529")).
			Background(lipgloss.Color("#F8F9FB")).
			MarginRight(1)
	hoverStyle = keyStyle.
			Background(lipgloss.Color("#ECEFF3")).
			Bold(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	display := displayStyle.Render(m.input.View() + "\n" + resultStyle.Render(m.result))

	rows := make([]string, 0, len(Keys))
	for r, row := range Keys {
		keys := make([]string, 0, len(row))
		for c, label := range row {
			style := keyStyle
			if m.focus == focusKeys && r == m.row && c == m.col {
				style = hoverStyle
			}
			if len(row) == 1 {
				// A lone key spans the whole row.
				style = style.Width(keyWidth*4 + 3)
			}
			keys = append(keys, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	grid := strings.Join(rows, "\n\n")

	help := helpStyle.Render("enter: = • tab: keypad • ctrl+l: clear • esc: quit")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, display, grid)) + "\n" + help + "\n"
}
