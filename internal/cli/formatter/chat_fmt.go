package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/domain"
)

// FormatChatMessage renders one message with its sender tag.
func FormatChatMessage(m domain.ChatMessage) string {
	if m.Sender == domain.SenderUser {
		return fmt.Sprintf("%s %s\n", StyleBlue.Render("you ›"), m.Text)
	}
	return fmt.Sprintf("%s %s\n", StylePurple.Render("aura ›"), m.Text)
}

func FormatChatHistory(msgs []domain.ChatMessage) string {
	if len(msgs) == 0 {
		return Dim("No messages yet. Try `aura chat hello`.") + "\n"
	}
	var b strings.Builder
	for i, m := range msgs {
		if i > 0 && m.Sender == domain.SenderUser {
			b.WriteString("\n")
		}
		b.WriteString(FormatChatMessage(m))
	}
	return b.String()
}
