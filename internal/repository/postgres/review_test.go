package postgres_test

import (
	"context"
	"testing"
	"time"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReviewRepository_CreateWithRatingUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		review := &domain.Review{
			RentalID:   7,
			ReviewerID: 1,
			RevieweeID: 2,
			ItemID:     5,
			Rating:     5,
			Comment:    "Lovely dress",
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO reviews").
			WithArgs(review.RentalID, review.ReviewerID, review.RevieweeID, review.ItemID,
				review.Rating, review.Comment, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))
		mock.ExpectExec("UPDATE users SET").
			WithArgs(review.RevieweeID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithRatingUpdate(ctx, review)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), review.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepository_ExistsForRental(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM reviews").
		WithArgs(int32(7), int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsForRental(ctx, 7, 1)
	assert.NoError(t, err)
	assert.False(t, exists)
}
