package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) UpdateStatus(ctx context.Context, id int32, status domain.LoanStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockLoanRepo) ListByParticipant(ctx context.Context, userID int32) ([]domain.Loan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListActiveEndedBefore(ctx context.Context, date string) ([]domain.Loan, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListPendingStartedBefore(ctx context.Context, date string) ([]domain.Loan, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolRepo) SetAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockToolRepo) UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockToolRepo) ListApproved(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListUnavailable(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListPending(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Tool, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) ListByReviewee(ctx context.Context, userID int32) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) SummaryByReviewee(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

// MockFavoriteRepo
type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Create(ctx context.Context, fav *domain.Favorite) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}
func (m *MockFavoriteRepo) GetByUserAndTool(ctx context.Context, userID, toolID int32) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}
func (m *MockFavoriteRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}
func (m *MockFavoriteRepo) Delete(ctx context.Context, userID, toolID int32) error {
	args := m.Called(ctx, userID, toolID)
	return args.Error(0)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) ListConversation(ctx context.Context, userA, userB int32) ([]domain.Message, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) ListContacts(ctx context.Context, userID int32) ([]domain.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// fakeTxRunner runs the callback against the same mocks the test wired,
// standing in for a real transaction.
type fakeTxRunner struct {
	repos repository.Repositories
	err   error
}

func (f *fakeTxRunner) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(f.repos)
}

// sinkRecorder captures in-app notifications for assertions.
type sinkRecorder struct {
	notes []sinkNote
}

type sinkNote struct {
	UserID  int32
	Message string
}

func (s *sinkRecorder) Notify(_ context.Context, userID int32, message string) {
	s.notes = append(s.notes, sinkNote{UserID: userID, Message: message})
}

// stubEmail counts sends and optionally fails them.
type stubEmail struct {
	sent int
	err  error
}

func (e *stubEmail) SendLoanRequestNotification(context.Context, string, string, string, string) error {
	e.sent++
	return e.err
}
func (e *stubEmail) SendLoanStatusNotification(context.Context, string, string, string, string) error {
	e.sent++
	return e.err
}
func (e *stubEmail) SendToolModerationNotification(context.Context, string, string, string, bool) error {
	e.sent++
	return e.err
}
