package contract

import (
	"github.com/alexanderramin/aura/internal/app"
	"github.com/alexanderramin/aura/internal/domain"
)

type ChatRequest = app.ChatRequest

func NewChatRequest(message string) ChatRequest {
	return app.NewChatRequest(message)
}

type ChatResponse = app.ChatResponse

type QuizStatus = app.QuizStatus

type QuizAnswerResponse = app.QuizAnswerResponse

func NewQuizStatus(q domain.QuizState) QuizStatus {
	return app.NewQuizStatus(q)
}
