package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type favoriteRepository struct {
	db DBTX
}

func NewFavoriteRepository(db DBTX) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	query := `INSERT INTO favorites (user_id, tool_id, created_on) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, f.UserID, f.ToolID, time.Now()).Scan(&f.ID)
}

func (r *favoriteRepository) GetByUserAndTool(ctx context.Context, userID, toolID int32) (*domain.Favorite, error) {
	query := `SELECT id, user_id, tool_id, created_on FROM favorites WHERE user_id = $1 AND tool_id = $2`
	f := &domain.Favorite{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, userID, toolID).Scan(&f.ID, &f.UserID, &f.ToolID, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("favorite")
	}
	if err != nil {
		return nil, err
	}
	f.CreatedOn = createdOn.Format("2006-01-02")
	return f, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Favorite, error) {
	query := `SELECT f.id, f.user_id, f.tool_id, f.created_on, ` + toolColumns + `, u.id, u.name, u.email
	          FROM favorites f
	          JOIN tools t ON t.id = f.tool_id
	          JOIN users u ON u.id = t.owner_id
	          WHERE f.user_id = $1
	          ORDER BY f.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		var t domain.Tool
		var owner domain.User
		var fCreated, tCreated time.Time
		err := rows.Scan(&f.ID, &f.UserID, &f.ToolID, &fCreated,
			&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Category, &t.Status, &t.Type, &t.PriceCents, &t.Available, &tCreated,
			&owner.ID, &owner.Name, &owner.Email)
		if err != nil {
			return nil, err
		}
		f.CreatedOn = fCreated.Format("2006-01-02")
		t.CreatedOn = tCreated.Format("2006-01-02")
		t.Owner = &owner
		f.Tool = &t
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, toolID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1 AND tool_id = $2`, userID, toolID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("favorite")
	}
	return nil
}
