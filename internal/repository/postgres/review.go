package postgres

import (
	"context"
	"database/sql"
	"time"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateWithRatingUpdate(ctx context.Context, rv *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO reviews (rental_id, reviewer_id, reviewee_id, item_id, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		rv.RentalID, rv.ReviewerID, rv.RevieweeID, rv.ItemID, rv.Rating, rv.Comment, time.Now()).
		Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return err
	}

	// Keep the reviewee's aggregate in step with the review rows.
	_, err = tx.ExecContext(ctx,
		`UPDATE users SET
		     rating = (SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE reviewee_id = $1),
		     review_count = (SELECT count(*) FROM reviews WHERE reviewee_id = $1),
		     updated_at = $2
		 WHERE id = $1`,
		rv.RevieweeID, time.Now())
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reviewRepository) ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error) {
	query := `SELECT rv.id, rv.rental_id, rv.reviewer_id, rv.reviewee_id, rv.item_id, rv.rating, rv.comment, rv.created_at, u.name, u.avatar
	          FROM reviews rv
	          JOIN users u ON rv.reviewer_id = u.id
	          WHERE rv.item_id = $1
	          ORDER BY rv.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ID, &rv.RentalID, &rv.ReviewerID, &rv.RevieweeID, &rv.ItemID,
			&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.ReviewerName, &rv.ReviewerAvatar); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) ExistsForRental(ctx context.Context, rentalID, reviewerID int32) (bool, error) {
	var count int32
	query := `SELECT count(*) FROM reviews WHERE rental_id = $1 AND reviewer_id = $2`
	if err := r.db.QueryRowContext(ctx, query, rentalID, reviewerID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
