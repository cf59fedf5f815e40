package postgres

import (
	"context"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type messageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, content, is_read, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.SenderID, m.ReceiverID, m.Content, m.IsRead, time.Now()).Scan(&m.ID)
}

// ListConversation returns both directions of traffic between two users,
// oldest first, with the sender attached for display.
func (r *messageRepository) ListConversation(ctx context.Context, userA, userB int32) ([]domain.Message, error) {
	query := `SELECT m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_on, u.id, u.name, u.email
	          FROM messages m JOIN users u ON u.id = m.sender_id
	          WHERE (m.sender_id = $1 AND m.receiver_id = $2) OR (m.sender_id = $2 AND m.receiver_id = $1)
	          ORDER BY m.created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		var sender domain.User
		var createdOn time.Time
		err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &createdOn,
			&sender.ID, &sender.Name, &sender.Email)
		if err != nil {
			return nil, err
		}
		m.CreatedOn = createdOn.Format("2006-01-02 15:04:05")
		m.Sender = &sender
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// ListContacts walks the caller's message history newest-first and keeps the
// first (latest) message per correspondent.
func (r *messageRepository) ListContacts(ctx context.Context, userID int32) ([]domain.Contact, error) {
	query := `SELECT m.content, m.created_on, o.id, o.name, o.email
	          FROM messages m
	          JOIN users o ON o.id = CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END
	          WHERE m.sender_id = $1 OR m.receiver_id = $1
	          ORDER BY m.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[int32]bool)
	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		var createdOn time.Time
		if err := rows.Scan(&c.LastMessage, &createdOn, &c.User.ID, &c.User.Name, &c.User.Email); err != nil {
			return nil, err
		}
		if seen[c.User.ID] {
			continue
		}
		seen[c.User.ID] = true
		c.LastMessageDate = createdOn.Format("2006-01-02 15:04:05")
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
