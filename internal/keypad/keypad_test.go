package keypad

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func keys(types ...tea.KeyType) []tea.Msg {
	msgs := make([]tea.Msg, len(types))
	for i, k := range types {
		msgs[i] = tea.KeyMsg{Type: k}
	}
	return msgs
}

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypeAndEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"add", "1+2", "3"},
		{"right-assoc", "2^3^2", "512"},
		{"negate", "-(2+3)", "-5"},
		{"decimal", "1.5*2", "3"},
		{"infinity", "1/0", "+Inf"},
		{"unclosed", "(1+2", "Invalid expression"},
		{"trailing", "1+", "Invalid expression"},
		{"char", "1$2", "Invalid expression"},
		{"empty", "", "Invalid expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			if tt.expr != "" {
				m = send(t, m, typed(tt.expr))
			}
			assert.Equal(t, tt.expr, m.Expr())
			m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			assert.Equal(t, tt.want, m.Result())
		})
	}
}

func TestPress(t *testing.T) {
	m := New()
	for _, k := range []string{"7", "+", "8", "*", "(", "9", "-", "0", ")"} {
		m = m.press(k)
	}
	assert.Equal(t, "7+8*(9-0)", m.Expr())
	m = m.press("=")
	assert.Equal(t, "79", m.Result())

	m = m.press("Del")
	assert.Equal(t, "7+8*(9-0", m.Expr())
	m = m.press("=")
	assert.Equal(t, "Invalid expression", m.Result())

	m = m.press("Clr")
	assert.Empty(t, m.Expr())
	assert.Empty(t, m.Result())

	// Deleting from an empty expression does nothing.
	m = m.press("Del")
	assert.Empty(t, m.Expr())
}

func TestClearShortcut(t *testing.T) {
	m := send(t, New(), typed("2^10"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "1024", m.Result())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.Expr())
	assert.Empty(t, m.Result())
}

func TestNavigate(t *testing.T) {
	m := send(t, New(), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "7", m.Selected())

	m = send(t, m, keys(tea.KeyRight, tea.KeyRight, tea.KeyRight, tea.KeyRight)...)
	assert.Equal(t, "+", m.Selected(), "moving right stops at the edge")

	m = send(t, m, keys(tea.KeyDown, tea.KeyDown)...)
	assert.Equal(t, "/", m.Selected())

	m = send(t, m, keys(tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyDown)...)
	assert.Equal(t, "=", m.Selected(), "the last row has one key")

	m = send(t, m, keys(tea.KeyUp, tea.KeyUp, tea.KeyUp, tea.KeyUp, tea.KeyUp, tea.KeyUp, tea.KeyUp)...)
	assert.Equal(t, "7", m.Selected(), "moving up stops at the edge")

	m = send(t, m, keys(tea.KeyLeft)...)
	assert.Equal(t, "7", m.Selected())
}

func TestKeypadFocus(t *testing.T) {
	m := send(t, New(), tea.KeyMsg{Type: tea.KeyTab})
	// 3: down two rows from 7, right two columns.
	m = send(t, m, keys(tea.KeyDown, tea.KeyDown, tea.KeyRight, tea.KeyRight, tea.KeyEnter)...)
	assert.Equal(t, "3", m.Expr())
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "33", m.Expr())
	m = send(t, m, typed("*2"))
	assert.Equal(t, "33*2", m.Expr())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "33*", m.Expr())

	// Down to =.
	m = send(t, m, keys(tea.KeyDown, tea.KeyDown, tea.KeyDown)...)
	require.Equal(t, "=", m.Selected())
	m = send(t, m, typed("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "99", m.Result())

	// Back to the expression box, where typing edits and enter evaluates.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, typed("+1"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "33*3+1", m.Expr())
	assert.Equal(t, "100", m.Result())
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		next, cmd := New().Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, next.View())
	}
}

func TestView(t *testing.T) {
	m := send(t, New(), typed("6*7"), tea.KeyMsg{Type: tea.KeyEnter})
	v := m.View()
	assert.Contains(t, v, "6*7")
	assert.Contains(t, v, "42")
	for _, row := range Keys {
		for _, label := range row {
			assert.Contains(t, v, label)
		}
	}
}
