package domain

import "time"

type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one line of chat history. Seq orders messages within the
// history; Intent is set on bot replies only.
type ChatMessage struct {
	ID     string     `json:"id"`
	Seq    int        `json:"seq"`
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
	Intent string     `json:"intent,omitempty"`
	SentAt time.Time  `json:"sent_at"`
}
