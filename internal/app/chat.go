package app

import (
	"time"

	"github.com/alexanderramin/aura/internal/dialogue"
	"github.com/alexanderramin/aura/internal/domain"
)

type ChatRequest struct {
	Message string
	Now     *time.Time
}

func NewChatRequest(message string) ChatRequest {
	return ChatRequest{Message: message}
}

type ChatResponse struct {
	Intent      dialogue.Intent    `json:"intent"`
	Reply       string             `json:"reply"`
	UserMessage domain.ChatMessage `json:"user_message"`
	BotMessage  domain.ChatMessage `json:"bot_message"`
}
