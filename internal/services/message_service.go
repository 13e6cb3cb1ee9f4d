package services

import (
	"context"
	"strings"

	"sevaBack/internal/models"
)

// MessageStore is the persistence surface for chat messages.
type MessageStore interface {
	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)
	GetMessagesByBookingID(ctx context.Context, bookingID string) ([]models.Message, error)
}

type MessageService struct {
	MessageRepo MessageStore
	BookingRepo BookingStore
}

func (s *MessageService) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.Body = strings.TrimSpace(msg.Body)
	if msg.BookingID == "" || msg.SenderID == "" || msg.SenderName == "" || msg.Body == "" {
		return models.Message{}, models.ErrMissingFields
	}
	if msg.SenderType != models.SenderTypeUser && msg.SenderType != models.SenderTypeProvider {
		return models.Message{}, models.ErrMissingFields
	}
	if _, err := s.BookingRepo.GetBookingByID(ctx, msg.BookingID); err != nil {
		return models.Message{}, err
	}
	return s.MessageRepo.CreateMessage(ctx, msg)
}

func (s *MessageService) GetMessagesByBookingID(ctx context.Context, bookingID string) ([]models.Message, error) {
	return s.MessageRepo.GetMessagesByBookingID(ctx, bookingID)
}
