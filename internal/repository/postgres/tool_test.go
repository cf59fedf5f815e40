package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecitools-backend/internal/domain"
)

var toolRowColumns = []string{
	"id", "owner_id", "name", "description", "category", "status", "type", "price_cents", "available", "created_on",
}

func TestToolRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewToolRepository(db)
	price := int32(5000)
	mock.ExpectQuery(`INSERT INTO tools`).
		WithArgs(int32(5), "Ladder", "3m aluminium", "hardware", domain.ToolStatusPending, domain.ToolTypeSale, &price, true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	tool := &domain.Tool{
		OwnerID:     5,
		Name:        "Ladder",
		Description: "3m aluminium",
		Category:    "hardware",
		Status:      domain.ToolStatusPending,
		Type:        domain.ToolTypeSale,
		PriceCents:  &price,
		Available:   true,
	}
	require.NoError(t, repo.Create(context.Background(), tool))
	assert.Equal(t, int32(10), tool.ID)
}

func TestToolRepositorySetAvailability(t *testing.T) {
	t.Run("flips the flag", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewToolRepository(db)
		mock.ExpectExec(`UPDATE tools SET available`).
			WithArgs(false, int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetAvailability(context.Background(), 10, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing tool is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewToolRepository(db)
		mock.ExpectExec(`UPDATE tools SET available`).
			WithArgs(true, int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SetAvailability(context.Background(), 404, true)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestToolRepositoryListApproved(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewToolRepository(db)
	created := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	cols := append(append([]string{}, toolRowColumns...), "u_id", "u_name", "u_email")
	mock.ExpectQuery(`FROM tools t JOIN users u`).
		WithArgs(domain.ToolStatusApproved).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(10, 5, "Ladder", "3m", "hardware", "approved", "loan", nil, true, created, 5, "Ana", "ana@example.com"))

	tools, err := repo.ListApproved(context.Background())

	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "2026-08-30", tools[0].CreatedOn)
	require.NotNil(t, tools[0].Owner)
	assert.Equal(t, "Ana", tools[0].Owner.Name)
}

func TestToolRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewToolRepository(db)
	mock.ExpectQuery(`FROM tools t WHERE t.id`).
		WithArgs(int32(404)).
		WillReturnRows(sqlmock.NewRows(toolRowColumns))

	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
