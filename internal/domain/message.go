package domain

type Message struct {
	ID         int32  `json:"id"`
	SenderID   int32  `json:"sender_id"`
	Sender     *User  `json:"sender,omitempty"`
	ReceiverID int32  `json:"receiver_id"`
	Content    string `json:"content"`
	IsRead     bool   `json:"is_read"`
	CreatedOn  string `json:"created_on"`
}

// Contact is a distinct correspondent in the caller's message history,
// carrying the most recent exchanged message.
type Contact struct {
	User            User   `json:"user"`
	LastMessage     string `json:"last_message"`
	LastMessageDate string `json:"last_message_date"`
}
