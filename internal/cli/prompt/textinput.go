package prompt

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thoreinstein/pm/internal/errors"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// inputModel is a single-line input box with an optional default.
type inputModel struct {
	input      textinput.Model
	prompt     string
	def        string
	allowEmpty bool

	value     string
	errMsg    string
	cancelled bool
}

func newInputModel(prompt, def string, allowEmpty bool) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = def
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return inputModel{
		input:      ti,
		prompt:     prompt,
		def:        def,
		allowEmpty: allowEmpty,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				v = m.def
			}
			if v == "" && !m.allowEmpty {
				m.errMsg = "a value is required"
				return m, nil
			}
			m.value = v
			return m, tea.Quit
		}
	}

	m.errMsg = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(question.Sprint("?") + " " + promptStyle.Render(m.prompt))
	if m.def != "" {
		b.WriteString(" " + hintStyle.Render("("+m.def+")"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// Box reads text with a bubbletea input box. It needs a terminal.
type Box struct {
	in  io.Reader
	out io.Writer
}

// NewBox creates a Box bound to the given terminal streams.
func NewBox(in io.Reader, out io.Writer) *Box {
	return &Box{in: in, out: out}
}

// Input runs the input box until the user submits or cancels.
func (b *Box) Input(ctx context.Context, prompt, defaultValue string, allowEmpty bool) (string, error) {
	p := tea.NewProgram(
		newInputModel(prompt, defaultValue, allowEmpty),
		tea.WithInput(b.in),
		tea.WithOutput(b.out),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ErrCancelled
		}
		return "", errors.Wrap(err, "running input prompt")
	}

	m, ok := final.(inputModel)
	if !ok || m.cancelled {
		return "", ErrCancelled
	}
	return m.value, nil
}
