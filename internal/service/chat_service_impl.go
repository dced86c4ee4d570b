package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/dialogue"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
	"github.com/google/uuid"
)

type chatService struct {
	repos Repos
	uow   db.UnitOfWork
	opts  options
}

func NewChatService(repos Repos, uow db.UnitOfWork, opts ...Option) ChatService {
	return &chatService{repos: repos, uow: uow, opts: buildOptions(opts)}
}

// Send classifies the message, builds the reply from a fresh snapshot and
// appends both sides to the history.
func (s *chatService) Send(ctx context.Context, req contract.ChatRequest) (resp *contract.ChatResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "chat", fields, &err)()

	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, contract.NewError(contract.ErrEmptyMessage, "message is empty")
	}

	now := s.opts.clock(req.Now)
	snap, err := loadSnapshot(ctx, s.repos, now)
	if err != nil {
		return nil, err
	}

	reply := dialogue.Respond(text, dialogue.Input{
		Profile: snap.Profile,
		Metrics: snap.Metrics,
		Badges:  snap.Badges,
		Weather: snap.Weather,
		Now:     now,
	}, s.opts.random)
	fields["intent"] = string(reply.Intent)

	user := domain.ChatMessage{ID: uuid.New().String(), Sender: domain.SenderUser, Text: text, SentAt: now.UTC()}
	bot := domain.ChatMessage{
		ID:     uuid.New().String(),
		Sender: domain.SenderBot,
		Text:   reply.Text,
		Intent: string(reply.Intent),
		SentAt: now.UTC(),
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		chat := repository.NewSQLiteChatRepo(tx)
		if err := chat.Append(ctx, &user); err != nil {
			return err
		}
		return chat.Append(ctx, &bot)
	})
	if err != nil {
		return nil, fmt.Errorf("saving chat history: %w", err)
	}

	return &contract.ChatResponse{
		Intent:      reply.Intent,
		Reply:       reply.Text,
		UserMessage: user,
		BotMessage:  bot,
	}, nil
}

func (s *chatService) History(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	return s.repos.Chat.List(ctx, limit)
}

func (s *chatService) Clear(ctx context.Context) error {
	return s.repos.Chat.Clear(ctx)
}
