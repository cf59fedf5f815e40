package service

import (
	"context"
	"fmt"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type messageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	sink     NotificationSink
}

func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository, sink NotificationSink) MessageService {
	return &messageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
		sink:     sink,
	}
}

func (s *messageService) Send(ctx context.Context, actor domain.Actor, receiverID int32, content string) (*domain.Message, error) {
	if receiverID == actor.UserID {
		return nil, domain.Validationf("you cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   actor.UserID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// The message is the primary mutation; the notification is best-effort
	// and must never fail the send.
	s.sink.Notify(ctx, receiverID, fmt.Sprintf("New private message: %q", preview(content, 30)))
	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, actor domain.Actor, otherUserID int32) ([]domain.Message, error) {
	return s.msgRepo.ListConversation(ctx, actor.UserID, otherUserID)
}

func (s *messageService) Contacts(ctx context.Context, actor domain.Actor) ([]domain.Contact, error) {
	return s.msgRepo.ListContacts(ctx, actor.UserID)
}

func preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
