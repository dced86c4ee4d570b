package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type chatReplyMsg struct {
	resp *contract.ChatResponse
	err  error
}

// chatView is the interactive chat session. Each submitted line goes
// through the chat use case, which persists both sides.
type chatView struct {
	ctx     context.Context
	chat    contract.ChatUseCase
	input   textinput.Model
	spinner spinner.Model

	lines   []string
	waiting bool
}

func newChatView(ctx context.Context, chat contract.ChatUseCase, history []domain.ChatMessage) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Ask about water, exercise, sleep..."
	ti.CharLimit = 500

	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(formatter.StylePurple),
	)

	v := &chatView{ctx: ctx, chat: chat, input: ti, spinner: sp}
	v.lines = append(v.lines, formatter.Dim("Chat with Aura. Enter sends, Esc quits."))
	for _, m := range history {
		v.lines = append(v.lines, strings.TrimRight(formatter.FormatChatMessage(m), "\n"))
	}
	return v
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return v, tea.Quit
		case tea.KeyEnter:
			if v.waiting {
				return v, nil
			}
			text := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			return v.submit(text)
		}

	case chatReplyMsg:
		v.waiting = false
		if msg.err != nil {
			v.lines = append(v.lines, formatter.StyleRed.Render("Error: ")+ErrorMessage(msg.err))
			return v, nil
		}
		v.lines = append(v.lines, strings.TrimRight(formatter.FormatChatMessage(msg.resp.BotMessage), "\n"))
		return v, nil

	case spinner.TickMsg:
		if !v.waiting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) submit(text string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(text) {
	case "":
		return v, nil
	case "/quit", "/exit", "quit", "exit":
		return v, tea.Quit
	}

	v.lines = append(v.lines, strings.TrimRight(
		formatter.FormatChatMessage(domain.ChatMessage{Sender: domain.SenderUser, Text: text}), "\n"))
	v.waiting = true
	return v, tea.Batch(v.spinner.Tick, v.send(text))
}

func (v *chatView) send(text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := v.chat.Send(v.ctx, contract.NewChatRequest(text))
		return chatReplyMsg{resp: resp, err: err}
	}
}

func (v *chatView) View() string {
	var b strings.Builder
	for _, line := range v.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if v.waiting {
		b.WriteString(v.spinner.View() + formatter.Dim(" thinking...") + "\n")
	}
	b.WriteString(formatter.StyleBlue.Render("you ›") + " ")
	b.WriteString(v.input.View())
	return b.String()
}
