package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type loanRepository struct {
	db DBTX
}

func NewLoanRepository(db DBTX) repository.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `l.id, l.tool_id, l.owner_id, l.requester_id, l.start_date, l.end_date, l.status, l.created_on, l.updated_on`

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (tool_id, owner_id, requester_id, start_date, end_date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		l.ToolID, l.OwnerID, l.RequesterID, l.StartDate, l.EndDate, l.Status, now, now,
	).Scan(&l.ID)
}

// GetByID loads the loan together with its tool relation; the lifecycle
// needs the tool's type and availability on every transition.
func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + `, t.id, t.owner_id, t.name, t.description, t.category, t.status, t.type, t.price_cents, t.available, t.created_on
	          FROM loans l JOIN tools t ON t.id = l.tool_id
	          WHERE l.id = $1`

	l := &domain.Loan{}
	t := &domain.Tool{}
	var lCreated, lUpdated, tCreated time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.ToolID, &l.OwnerID, &l.RequesterID, &l.StartDate, &l.EndDate, &l.Status, &lCreated, &lUpdated,
		&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Category, &t.Status, &t.Type, &t.PriceCents, &t.Available, &tCreated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("loan %d", id)
	}
	if err != nil {
		return nil, err
	}
	l.CreatedOn = lCreated.Format("2006-01-02")
	l.UpdatedOn = lUpdated.Format("2006-01-02")
	t.CreatedOn = tCreated.Format("2006-01-02")
	l.Tool = t
	return l, nil
}

func (r *loanRepository) UpdateStatus(ctx context.Context, id int32, status domain.LoanStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE loans SET status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("loan %d", id)
	}
	return nil
}

func (r *loanRepository) ListByParticipant(ctx context.Context, userID int32) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + `, t.id, t.owner_id, t.name, t.description, t.category, t.status, t.type, t.price_cents, t.available, t.created_on
	          FROM loans l JOIN tools t ON t.id = l.tool_id
	          WHERE l.owner_id = $1 OR l.requester_id = $1
	          ORDER BY l.created_on DESC`
	return r.listWithTool(ctx, query, userID)
}

func (r *loanRepository) ListActiveEndedBefore(ctx context.Context, date string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans l WHERE l.status = $1 AND l.end_date < $2 ORDER BY l.end_date ASC`
	return r.list(ctx, query, domain.LoanStatusActive, date)
}

func (r *loanRepository) ListPendingStartedBefore(ctx context.Context, date string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans l WHERE l.status = $1 AND l.start_date < $2 ORDER BY l.start_date ASC`
	return r.list(ctx, query, domain.LoanStatusPending, date)
}

func (r *loanRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		var created, updated time.Time
		if err := rows.Scan(&l.ID, &l.ToolID, &l.OwnerID, &l.RequesterID, &l.StartDate, &l.EndDate, &l.Status, &created, &updated); err != nil {
			return nil, err
		}
		l.CreatedOn = created.Format("2006-01-02")
		l.UpdatedOn = updated.Format("2006-01-02")
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *loanRepository) listWithTool(ctx context.Context, query string, args ...interface{}) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		var t domain.Tool
		var lCreated, lUpdated, tCreated time.Time
		err := rows.Scan(
			&l.ID, &l.ToolID, &l.OwnerID, &l.RequesterID, &l.StartDate, &l.EndDate, &l.Status, &lCreated, &lUpdated,
			&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Category, &t.Status, &t.Type, &t.PriceCents, &t.Available, &tCreated,
		)
		if err != nil {
			return nil, err
		}
		l.CreatedOn = lCreated.Format("2006-01-02")
		l.UpdatedOn = lUpdated.Format("2006-01-02")
		t.CreatedOn = tCreated.Format("2006-01-02")
		l.Tool = &t
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
