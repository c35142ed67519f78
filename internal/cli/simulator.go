package cli

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/etabo/mifugo-connect/internal/chat"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the SMS phone simulator",
	Long: `Open the interactive phone simulator: type a command the way a
pastoralist would on a feature phone and watch the reply arrive after the
simulated network delay.

Try "GOAT LODWAR" or "DROUGHT". Press Esc or Ctrl+C to leave.`,
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	session := chat.NewSession(store, cfg.ReplyDelay, logger)
	model := newSimulatorModel(session)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("simulator UI error: %w", err)
	}
	return nil
}

// deliveryMsg carries a system reply that just landed in the log.
type deliveryMsg chat.Message

// simulatorModel is the bubbletea model for the phone simulator.
type simulatorModel struct {
	session *chat.Session
	input   textinput.Model
	theme   Theme
	width   int
	height  int
}

func newSimulatorModel(session *chat.Session) simulatorModel {
	ti := textinput.New()
	ti.Placeholder = "Type GOAT LODWAR..."
	ti.Focus()

	return simulatorModel{
		session: session,
		input:   ti,
		theme:   defaultTheme,
		width:   80,
		height:  24,
	}
}

// Init starts listening for delivered replies.
func (m simulatorModel) Init() tea.Cmd {
	return m.awaitDelivery()
}

// Update handles messages and returns the updated model.
func (m simulatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			// Empty input is rejected by the session without effect.
			m.session.HandleUserText(m.input.Value())
			m.input.Reset()
			return m, nil
		}

	case deliveryMsg:
		// The log already holds the reply; rerender and keep listening.
		return m, m.awaitDelivery()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the conversation and the input line.
func (m simulatorModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m simulatorModel) renderContent() string {
	var b strings.Builder

	header := m.theme.accentStyle().Render("Mifugo Info Service") +
		m.theme.hintStyle().Render("  ·  online")
	b.WriteString(header + "\n\n")

	bubbleWidth := m.width * 3 / 4
	if bubbleWidth < 24 {
		bubbleWidth = 24
	}

	for _, msg := range m.session.Log().Messages() {
		stamp := m.theme.hintStyle().Render(msg.Timestamp.Format("15:04"))
		switch msg.Sender {
		case chat.SenderUser:
			bubble := m.theme.userBubble().MaxWidth(bubbleWidth).Render(msg.Text)
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble+" "+stamp) + "\n")
		default:
			bubble := m.theme.systemBubble().MaxWidth(bubbleWidth).Render(msg.Text)
			b.WriteString(stamp + " " + bubble + "\n")
		}
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(m.theme.hintStyle().Render("enter to send · esc to quit") + "\n")
	return b.String()
}

// awaitDelivery blocks (in a command goroutine) until the session
// delivers the next system reply.
func (m simulatorModel) awaitDelivery() tea.Cmd {
	return func() tea.Msg {
		return deliveryMsg(<-m.session.Deliveries())
	}
}
