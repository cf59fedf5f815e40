package service

import (
	"context"

	"vecitools-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	Profile(ctx context.Context, userID int32) (*domain.User, *domain.RatingSummary, error)
	UpdateProfile(ctx context.Context, actor domain.Actor, name, email string) (*domain.User, error)
}

type ToolService interface {
	Create(ctx context.Context, actor domain.Actor, tool *domain.Tool) error
	Get(ctx context.Context, id int32) (*domain.Tool, error)
	ListApproved(ctx context.Context) ([]domain.Tool, error)
	ListUnavailable(ctx context.Context) ([]domain.Tool, error)
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.Tool, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Tool, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id int32, status domain.ToolStatus) (*domain.Tool, error)
	Remove(ctx context.Context, actor domain.Actor, id int32) error
}

type LoanService interface {
	Create(ctx context.Context, actor domain.Actor, toolID int32, startDate, endDate string) (*domain.Loan, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, loanID int32, next domain.LoanStatus) (*domain.Loan, error)
	MyLoans(ctx context.Context, actor domain.Actor) ([]domain.Loan, error)
	Get(ctx context.Context, actor domain.Actor, loanID int32) (*domain.Loan, error)
}

type ReviewService interface {
	Create(ctx context.Context, actor domain.Actor, loanID, rating int32, comment string) (*domain.Review, error)
	ListForUser(ctx context.Context, userID int32) ([]domain.Review, error)
}

type MessageService interface {
	Send(ctx context.Context, actor domain.Actor, receiverID int32, content string) (*domain.Message, error)
	Conversation(ctx context.Context, actor domain.Actor, otherUserID int32) ([]domain.Message, error)
	Contacts(ctx context.Context, actor domain.Actor) ([]domain.Contact, error)
}

type FavoriteService interface {
	Add(ctx context.Context, actor domain.Actor, toolID int32) (*domain.Favorite, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Favorite, error)
	Remove(ctx context.Context, actor domain.Actor, toolID int32) error
}

type NotificationService interface {
	ListForUser(ctx context.Context, actor domain.Actor) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, actor domain.Actor, notificationID int32) error
}

// NotificationSink records an in-app notification for a user. Contract:
// at-most-once-or-log — implementations never return an error to the caller;
// a failed write is logged and dropped so the caller's primary mutation is
// unaffected.
type NotificationSink interface {
	Notify(ctx context.Context, userID int32, message string)
}

// EmailService is the best-effort email side channel for marketplace events.
type EmailService interface {
	SendLoanRequestNotification(ctx context.Context, toEmail, toName, requesterName, toolName string) error
	SendLoanStatusNotification(ctx context.Context, toEmail, toName, toolName, statusLine string) error
	SendToolModerationNotification(ctx context.Context, toEmail, toName, toolName string, approved bool) error
}
