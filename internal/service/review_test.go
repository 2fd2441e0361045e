package service

import (
	"context"
	"testing"

	"clothshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReviewFixture() (*MockReviewRepo, *MockRentalRepo, ReviewService) {
	reviewRepo := new(MockReviewRepo)
	rentalRepo := new(MockRentalRepo)
	svc := NewReviewService(reviewRepo, rentalRepo)
	return reviewRepo, rentalRepo, svc
}

func completedRental() *domain.Rental {
	return &domain.Rental{
		ID:       7,
		ItemID:   5,
		RenterID: 1,
		OwnerID:  2,
		Status:   domain.RentalStatusCompleted,
	}
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("RenterReviewsOwner", func(t *testing.T) {
		reviewRepo, rentalRepo, svc := newReviewFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(completedRental(), nil)
		reviewRepo.On("ExistsForRental", ctx, int32(7), int32(1)).Return(false, nil)
		reviewRepo.On("CreateWithRatingUpdate", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)

		review, err := svc.Create(ctx, 1, 7, 5, "Great condition, fast handover")
		assert.NoError(t, err)
		assert.Equal(t, int32(2), review.RevieweeID)
		assert.Equal(t, int32(5), review.ItemID)
	})

	t.Run("OwnerReviewsRenter", func(t *testing.T) {
		reviewRepo, rentalRepo, svc := newReviewFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(completedRental(), nil)
		reviewRepo.On("ExistsForRental", ctx, int32(7), int32(2)).Return(false, nil)
		reviewRepo.On("CreateWithRatingUpdate", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)

		review, err := svc.Create(ctx, 2, 7, 4, "")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), review.RevieweeID)
	})

	t.Run("OutsiderForbidden", func(t *testing.T) {
		_, rentalRepo, svc := newReviewFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(completedRental(), nil)

		_, err := svc.Create(ctx, 99, 7, 5, "")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("RentalNotCompleted", func(t *testing.T) {
		_, rentalRepo, svc := newReviewFixture()
		rt := completedRental()
		rt.Status = domain.RentalStatusConfirmed
		rentalRepo.On("GetByID", ctx, int32(7)).Return(rt, nil)

		_, err := svc.Create(ctx, 1, 7, 5, "")
		assert.ErrorIs(t, err, domain.ErrReviewNotAllowed)
	})

	t.Run("Duplicate", func(t *testing.T) {
		reviewRepo, rentalRepo, svc := newReviewFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(completedRental(), nil)
		reviewRepo.On("ExistsForRental", ctx, int32(7), int32(1)).Return(true, nil)

		_, err := svc.Create(ctx, 1, 7, 5, "")
		assert.ErrorIs(t, err, domain.ErrDuplicateReview)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		_, _, svc := newReviewFixture()
		_, err := svc.Create(ctx, 1, 7, 6, "")
		assert.Error(t, err)
	})
}
