package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vecitools-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Every
// repository runs against it so the same code serves both plain calls and
// transactional ones.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ToolRepository
	repository.LoanRepository
	repository.ReviewRepository
	repository.MessageRepository
	repository.NotificationRepository
	repository.FavoriteRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ToolRepository:         NewToolRepository(db),
		LoanRepository:         NewLoanRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		MessageRepository:      NewMessageRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		FavoriteRepository:     NewFavoriteRepository(db),
	}
}

func bind(dbtx DBTX) repository.Repositories {
	return repository.Repositories{
		Users:         NewUserRepository(dbtx),
		Tools:         NewToolRepository(dbtx),
		Loans:         NewLoanRepository(dbtx),
		Reviews:       NewReviewRepository(dbtx),
		Messages:      NewMessageRepository(dbtx),
		Notifications: NewNotificationRepository(dbtx),
		Favorites:     NewFavoriteRepository(dbtx),
	}
}

// WithinTx runs fn with repositories bound to a single transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(bind(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
