package main

import (
	"context"
	"fmt"
	"strings"

	"support-widget/internal/domain/conversation"
	"support-widget/internal/domain/entities"
	"support-widget/internal/infra/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatSession is the part of the session service the UI drives.
type chatSession interface {
	Send(ctx context.Context, text string) (entities.Message, error)
	Messages() []entities.Message
}

type replyMsg struct {
	reply entities.Message
	err   error
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("94")).Padding(0, 1)
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Padding(0, 1)

	badgeColors = map[string]string{
		conversation.TypeRecommendation: "114",
		conversation.TypeAnswer:         "75",
		conversation.TypeShipping:       "221",
		conversation.TypeGeneral:        "250",
		conversation.TypeError:          "203",
	}
)

type model struct {
	ctx      context.Context
	log      *logger.Logger
	session  chatSession
	messages []entities.Message
	pending  string
	input    []rune
	waiting  bool
	err      error
	width    int
}

func newModel(ctx context.Context, log *logger.Logger, session chatSession) model {
	return model{ctx: ctx, log: log, session: session, messages: session.Messages(), width: 80}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case replyMsg:
		m.waiting = false
		m.pending = ""
		m.err = msg.err
		if msg.err != nil {
			m.log.Error(fmt.Sprintf("Failed to send message: %v", msg.err))
		}
		m.messages = m.session.Messages()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(string(m.input))
	if m.waiting || text == "" {
		return m, nil
	}

	m.input = nil
	m.waiting = true
	m.pending = text
	m.err = nil

	session, ctx := m.session, m.ctx
	return m, func() tea.Msg {
		reply, err := session.Send(ctx, text)
		return replyMsg{reply: reply, err: err}
	}
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Furniture Support") + "\n\n")

	wrap := lipgloss.NewStyle().Width(max(20, m.width-4))
	for _, msg := range m.messages {
		sb.WriteString(wrap.Render(renderMessage(msg)) + "\n")
	}
	if m.pending != "" {
		sb.WriteString(wrap.Render(userStyle.Render("You: "+m.pending)) + "\n")
	}
	if m.waiting {
		sb.WriteString(hintStyle.Render("Assistant is typing...") + "\n")
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	sb.WriteString("\n> " + string(m.input) + "\n")
	sb.WriteString(hintStyle.Render("enter to send, esc to quit"))
	return sb.String()
}

func renderMessage(msg entities.Message) string {
	if msg.IsUser() {
		return userStyle.Render("You: " + msg.Text)
	}

	var sb strings.Builder
	if color, ok := badgeColors[msg.ResponseType]; ok {
		sb.WriteString(badgeStyle.Background(lipgloss.Color(color)).Render(msg.ResponseType) + " ")
	}
	if msg.ResponseType == conversation.TypeError {
		sb.WriteString(errorStyle.Render(msg.Text))
		return sb.String()
	}

	sb.WriteString(botStyle.Render("Assistant: " + msg.Text))
	for _, point := range msg.Details {
		sb.WriteString("\n  • " + hintStyle.Render(point))
	}
	return sb.String()
}
