package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

var loanRowColumns = []string{
	"id", "tool_id", "owner_id", "requester_id", "start_date", "end_date", "status", "created_on", "updated_on",
}

var loanWithToolColumns = append(append([]string{}, loanRowColumns...),
	"t_id", "t_owner_id", "t_name", "t_description", "t_category", "t_status", "t_type", "t_price_cents", "t_available", "t_created_on",
)

func TestLoanRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLoanRepository(db)

	mock.ExpectQuery(`INSERT INTO loans`).
		WithArgs(int32(10), int32(2), int32(1), "2026-09-01", "2026-09-05", domain.LoanStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))

	loan := &domain.Loan{
		ToolID:      10,
		OwnerID:     2,
		RequesterID: 1,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-05",
		Status:      domain.LoanStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), loan))
	assert.Equal(t, int32(77), loan.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepositoryGetByID(t *testing.T) {
	t.Run("loads the loan with its tool relation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLoanRepository(db)

		created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`FROM loans l JOIN tools t`).
			WithArgs(int32(77)).
			WillReturnRows(sqlmock.NewRows(loanWithToolColumns).AddRow(
				77, 10, 2, 1, "2026-09-01", "2026-09-05", "approved", created, created,
				10, 2, "Cordless Drill", "18V", "power tools", "approved", "loan", nil, true, created,
			))

		loan, err := repo.GetByID(context.Background(), 77)

		require.NoError(t, err)
		assert.Equal(t, domain.LoanStatusApproved, loan.Status)
		assert.Equal(t, "2026-08-30", loan.CreatedOn)
		require.NotNil(t, loan.Tool)
		assert.Equal(t, domain.ToolTypeLoan, loan.Tool.Type)
		assert.True(t, loan.Tool.Available)
		assert.Nil(t, loan.Tool.PriceCents)
	})

	t.Run("missing loan maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLoanRepository(db)
		mock.ExpectQuery(`FROM loans l JOIN tools t`).
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows(loanWithToolColumns))

		_, err = repo.GetByID(context.Background(), 404)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLoanRepositoryUpdateStatus(t *testing.T) {
	t.Run("updates the row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLoanRepository(db)
		mock.ExpectExec(`UPDATE loans SET status`).
			WithArgs(domain.LoanStatusActive, sqlmock.AnyArg(), int32(77)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), 77, domain.LoanStatusActive))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLoanRepository(db)
		mock.ExpectExec(`UPDATE loans SET status`).
			WithArgs(domain.LoanStatusActive, sqlmock.AnyArg(), int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.UpdateStatus(context.Background(), 404, domain.LoanStatusActive)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLoanRepositoryListActiveEndedBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLoanRepository(db)
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM loans l WHERE l.status = \$1 AND l.end_date < \$2`).
		WithArgs(domain.LoanStatusActive, "2026-08-31").
		WillReturnRows(sqlmock.NewRows(loanRowColumns).
			AddRow(1, 10, 2, 1, "2026-08-10", "2026-08-20", "active", created, created).
			AddRow(2, 11, 3, 1, "2026-08-15", "2026-08-25", "active", created, created))

	loans, err := repo.ListActiveEndedBefore(context.Background(), "2026-08-31")

	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, int32(1), loans[0].ID)
	assert.Equal(t, domain.LoanStatusActive, loans[1].Status)
}

// The status write and the availability flip must ride one transaction:
// commit when both succeed, roll back when either fails.
func TestStoreWithinTx(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := NewStore(db)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE loans SET status`).
			WithArgs(domain.LoanStatusActive, sqlmock.AnyArg(), int32(77)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE tools SET available`).
			WithArgs(false, int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.WithinTx(context.Background(), func(r repository.Repositories) error {
			if err := r.Loans.UpdateStatus(context.Background(), 77, domain.LoanStatusActive); err != nil {
				return err
			}
			return r.Tools.SetAvailability(context.Background(), 10, false)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := NewStore(db)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE loans SET status`).
			WithArgs(domain.LoanStatusActive, sqlmock.AnyArg(), int32(77)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE tools SET available`).
			WithArgs(false, int32(10)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err = store.WithinTx(context.Background(), func(r repository.Repositories) error {
			if err := r.Loans.UpdateStatus(context.Background(), 77, domain.LoanStatusActive); err != nil {
				return err
			}
			return r.Tools.SetAvailability(context.Background(), 10, false)
		})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
