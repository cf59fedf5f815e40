package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_on, updated_on FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_on, updated_on FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, password_hash=$3, updated_on=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.PasswordHash, time.Now(), u.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("user %d", u.ID)
	}
	return nil
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("user")
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}
