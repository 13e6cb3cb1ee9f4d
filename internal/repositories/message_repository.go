package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sevaBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now()

	query := `
		INSERT INTO messages (id, booking_id, sender_id, sender_name, sender_type, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		msg.ID, msg.BookingID, msg.SenderID, msg.SenderName, msg.SenderType, msg.Body, msg.CreatedAt,
	)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			return models.Message{}, models.ErrBookingNotFound
		}
		return models.Message{}, err
	}
	return msg, nil
}

func (r *MessageRepository) GetMessagesByBookingID(ctx context.Context, bookingID string) ([]models.Message, error) {
	query := `
		SELECT id, booking_id, sender_id, sender_name, sender_type, body, created_at
		FROM messages
		WHERE booking_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		err := rows.Scan(&msg.ID, &msg.BookingID, &msg.SenderID, &msg.SenderName,
			&msg.SenderType, &msg.Body, &msg.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
