package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jnew-dev/jnew/internal/javaname"
	"github.com/jnew-dev/jnew/internal/output"
	"github.com/jnew-dev/jnew/internal/scaffold"
)

// TUIPrompter asks questions with Bubble Tea programs. It needs a terminal
// on both ends.
type TUIPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTUIPrompter returns a prompter that reads keys from in and draws on out.
func NewTUIPrompter(in io.Reader, out io.Writer) *TUIPrompter {
	return &TUIPrompter{in: in, out: out}
}

// SelectKind shows a cursor menu over kinds.
func (p *TUIPrompter) SelectKind(ctx context.Context, kinds []string) (string, bool, error) {
	m, err := p.run(ctx, newKindModel(kinds))
	if err != nil || m == nil {
		return "", false, err
	}
	km := m.(*kindModel)
	if km.cancelled {
		return "", false, nil
	}
	return km.chosen, true, nil
}

// EnterName shows a text input for the type name.
func (p *TUIPrompter) EnterName(ctx context.Context, kind string) (string, bool, error) {
	m, err := p.run(ctx, newNameModel(kind))
	if err != nil || m == nil {
		return "", false, err
	}
	nm := m.(*nameModel)
	if nm.cancelled {
		return "", false, nil
	}
	return nm.value, true, nil
}

// run executes model to completion. A killed program yields a nil model and
// no error so the caller treats it as a dismissal.
func (p *TUIPrompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil, nil
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

type kindModel struct {
	kinds     []string
	cursor    int
	chosen    string
	cancelled bool
}

func newKindModel(kinds []string) *kindModel {
	return &kindModel{kinds: kinds}
}

func (m *kindModel) Init() tea.Cmd {
	return nil
}

func (m *kindModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.kinds[m.cursor]
		return m, tea.Quit
	default:
		// Digit shortcuts select directly.
		s := key.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx := int(s[0] - '1'); idx < len(m.kinds) {
				m.cursor = idx
				m.chosen = m.kinds[idx]
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *kindModel) View() string {
	if m.chosen != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(output.StyleTitle.Render("Select kind"))
	b.WriteString("\n\n")
	for i, kind := range m.kinds {
		label := fmt.Sprintf("%d) %s", i+1, scaffold.Label(kind))
		if i == m.cursor {
			b.WriteString(output.StyleSelected.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(output.StyleDim.Render("↑/↓ move • enter select • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

type nameModel struct {
	kind      string
	input     textinput.Model
	problem   string
	value     string
	done      bool
	cancelled bool
}

func newNameModel(kind string) *nameModel {
	ti := textinput.New()
	ti.Placeholder = "TypeName"
	ti.Prompt = "> "
	ti.CharLimit = 255
	ti.Focus()
	return &nameModel{kind: kind, input: ti}
}

func (m *nameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *nameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = strings.TrimSpace(m.input.Value())
			if m.value == "" {
				m.cancelled = true
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.problem = ""
	if v := strings.TrimSpace(m.input.Value()); v != "" {
		if err := javaname.Validate(v); err != nil {
			m.problem = err.Error()
		}
	}
	return m, cmd
}

func (m *nameModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(output.StyleTitle.Render("Name for new " + scaffold.Label(m.kind)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.problem != "" {
		b.WriteString(output.StyleWarn.Render(m.problem))
		b.WriteString("\n")
	}
	b.WriteString(output.StyleDim.Render("enter confirm • esc cancel"))
	b.WriteString("\n")
	return b.String()
}
