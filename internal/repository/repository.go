package repository

import (
	"context"

	"vecitools-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id int32) error
	// SetAvailability flips the availability flag only. Trusted-caller
	// contract: invoked by the loan lifecycle inside its transaction, no
	// permission check here.
	SetAvailability(ctx context.Context, id int32, available bool) error
	UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error
	ListApproved(ctx context.Context) ([]domain.Tool, error)
	ListUnavailable(ctx context.Context) ([]domain.Tool, error)
	ListPending(ctx context.Context) ([]domain.Tool, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Tool, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	// GetByID returns the loan with its Tool relation populated.
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	UpdateStatus(ctx context.Context, id int32, status domain.LoanStatus) error
	ListByParticipant(ctx context.Context, userID int32) ([]domain.Loan, error)
	ListActiveEndedBefore(ctx context.Context, date string) ([]domain.Loan, error)
	ListPendingStartedBefore(ctx context.Context, date string) ([]domain.Loan, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByReviewee(ctx context.Context, userID int32) ([]domain.Review, error)
	SummaryByReviewee(ctx context.Context, userID int32) (*domain.RatingSummary, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListConversation(ctx context.Context, userA, userB int32) ([]domain.Message, error)
	ListContacts(ctx context.Context, userID int32) ([]domain.Contact, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.Favorite) error
	GetByUserAndTool(ctx context.Context, userID, toolID int32) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Favorite, error)
	Delete(ctx context.Context, userID, toolID int32) error
}

// Repositories bundles every repository bound to one database handle. A
// TxRunner yields a bundle bound to a single transaction.
type Repositories struct {
	Users         UserRepository
	Tools         ToolRepository
	Loans         LoanRepository
	Reviews       ReviewRepository
	Messages      MessageRepository
	Notifications NotificationRepository
	Favorites     FavoriteRepository
}

// TxRunner executes fn with repositories bound to one transaction,
// committing when fn returns nil and rolling back otherwise.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
