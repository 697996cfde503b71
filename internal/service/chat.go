package service

import (
	"context"
	"strings"

	"studyaid/internal/model"
)

func (s *Service) ListChatMessages(ctx context.Context) ([]model.ChatMessage, error) {
	ctx, span, err := s.start(ctx, "ListChatMessages", s.latency.List)
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.ListChatMessages(ctx)
}

func (s *Service) SendChatMessage(ctx context.Context, message string) ([]model.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, invalid("message is required")
	}
	ctx, span, err := s.start(ctx, "SendChatMessage", s.latency.Chat)
	defer span.End()
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	return s.repo.AppendChatMessages(ctx,
		model.ChatMessage{OwnerID: s.ownerID, Message: message, IsFromUser: true, Timestamp: now},
		model.ChatMessage{OwnerID: s.ownerID, Message: s.responder.Reply(message), IsFromUser: false, Timestamp: now},
	)
}
