package postgres

import (
	"context"
	"math"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type reviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (loan_id, rating, comment, reviewer_id, reviewee_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rv.LoanID, rv.Rating, rv.Comment, rv.ReviewerID, rv.RevieweeID, time.Now(),
	).Scan(&rv.ID)
}

func (r *reviewRepository) ListByReviewee(ctx context.Context, userID int32) ([]domain.Review, error) {
	query := `SELECT r.id, r.loan_id, r.rating, r.comment, r.reviewer_id, r.reviewee_id, r.created_on, u.id, u.name, u.email
	          FROM reviews r JOIN users u ON u.id = r.reviewer_id
	          WHERE r.reviewee_id = $1
	          ORDER BY r.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		var reviewer domain.User
		var createdOn time.Time
		err := rows.Scan(&rv.ID, &rv.LoanID, &rv.Rating, &rv.Comment, &rv.ReviewerID, &rv.RevieweeID, &createdOn,
			&reviewer.ID, &reviewer.Name, &reviewer.Email)
		if err != nil {
			return nil, err
		}
		rv.CreatedOn = createdOn.Format("2006-01-02")
		rv.Reviewer = &reviewer
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// SummaryByReviewee computes the profile star rating: mean of received
// ratings rounded to one decimal. Zero average for users with no reviews.
func (r *reviewRepository) SummaryByReviewee(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE reviewee_id = $1`
	s := &domain.RatingSummary{}
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.Average, &s.Count); err != nil {
		return nil, err
	}
	s.Average = math.Round(s.Average*10) / 10
	return s, nil
}
