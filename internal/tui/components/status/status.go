// Package status implements the status bar: a left content slot and
// transient, typed messages that clear themselves after a timeout.
package status

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/techsoft3d/visualize-components/internal/tui/styles"
)

// MessageType classifies a status message.
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// Message is one transient status-bar message.
type Message struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

type clearMessageMsg struct {
	timestamp time.Time
}

// Component is the status bar.
type Component struct {
	message     *Message
	width       int
	leftContent string
	clearAfter  time.Duration
}

// New creates a status bar; messages clear after five seconds.
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetMessage shows a message of the given type and schedules its expiry.
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	c.message = &Message{
		Content:   content,
		Type:      msgType,
		Timestamp: time.Now(),
	}
	stamp := c.message.Timestamp
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message.
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message.
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// ShowError shows an error message.
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// ShowSuccess shows a success message.
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// SetLeftContent sets the persistent left slot, usually the model name
// and selection summary.
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// Init implements the component interface.
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update expires messages whose clear tick has arrived.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if clear, ok := msg.(clearMessageMsg); ok {
		// Only clear if a newer message has not replaced this one.
		if c.message != nil && c.message.Timestamp.Equal(clear.timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// View renders the left slot and, right-aligned, the current message.
func (c *Component) View() string {
	s := styles.CurrentTheme().S()

	left := s.Muted.Render(c.leftContent)
	right := ""
	if c.message != nil {
		switch c.message.Type {
		case Warning:
			right = s.Warning.Render(styles.WarningIcon + " " + c.message.Content)
		case Error:
			right = s.Error.Render(styles.ErrorIcon + " " + c.message.Content)
		case Success:
			right = s.Success.Render(styles.CheckIcon + " " + c.message.Content)
		default:
			right = s.Info.Render(styles.InfoIcon + " " + c.message.Content)
		}
	}

	gap := c.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	line := left + spaces(gap) + right
	if c.width > 0 {
		line = ansi.Truncate(line, c.width, "")
	}
	return line
}

// SetSize implements the sizeable interface.
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
