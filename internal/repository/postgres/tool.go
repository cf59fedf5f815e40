package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type toolRepository struct {
	db DBTX
}

func NewToolRepository(db DBTX) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `t.id, t.owner_id, t.name, t.description, t.category, t.status, t.type, t.price_cents, t.available, t.created_on`

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (owner_id, name, description, category, status, type, price_cents, available, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		t.OwnerID, t.Name, t.Description, t.Category, t.Status, t.Type, t.PriceCents, t.Available, time.Now(),
	).Scan(&t.ID)
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t WHERE t.id = $1`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("tool %d", id)
	}
	return t, err
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, description=$2, category=$3, type=$4, price_cents=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.Category, t.Type, t.PriceCents, t.ID)
	return err
}

func (r *toolRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("tool %d", id)
	}
	return nil
}

func (r *toolRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tools SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("tool %d", id)
	}
	return nil
}

func (r *toolRepository) UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tools SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("tool %d", id)
	}
	return nil
}

// ListApproved returns the public catalog: moderation-approved tools that
// are currently free to request, newest first, with owner contact attached.
func (r *toolRepository) ListApproved(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + `, u.id, u.name, u.email
	          FROM tools t JOIN users u ON u.id = t.owner_id
	          WHERE t.status = $1 AND t.available = TRUE
	          ORDER BY t.created_on DESC`
	return r.listWithOwner(ctx, query, domain.ToolStatusApproved)
}

func (r *toolRepository) ListUnavailable(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t WHERE t.available = FALSE ORDER BY t.created_on DESC`
	return r.list(ctx, query)
}

// ListPending is the FIFO moderation queue, oldest submission first.
func (r *toolRepository) ListPending(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + `, u.id, u.name, u.email
	          FROM tools t JOIN users u ON u.id = t.owner_id
	          WHERE t.status = $1
	          ORDER BY t.created_on ASC`
	return r.listWithOwner(ctx, query, domain.ToolStatusPending)
}

func (r *toolRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t WHERE t.owner_id = $1 ORDER BY t.created_on DESC`
	return r.list(ctx, query, ownerID)
}

func (r *toolRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) listWithOwner(ctx context.Context, query string, args ...interface{}) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		var owner domain.User
		var createdOn time.Time
		err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Category, &t.Status, &t.Type,
			&t.PriceCents, &t.Available, &createdOn, &owner.ID, &owner.Name, &owner.Email)
		if err != nil {
			return nil, err
		}
		t.CreatedOn = createdOn.Format("2006-01-02")
		t.Owner = &owner
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTool(row rowScanner) (*domain.Tool, error) {
	t := &domain.Tool{}
	var createdOn time.Time
	err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Category, &t.Status, &t.Type,
		&t.PriceCents, &t.Available, &createdOn)
	if err != nil {
		return nil, err
	}
	t.CreatedOn = createdOn.Format("2006-01-02")
	return t, nil
}
