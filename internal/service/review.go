package service

import (
	"context"
	"fmt"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	rentalRepo repository.RentalRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, rentalRepo repository.RentalRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		rentalRepo: rentalRepo,
	}
}

func (s *reviewService) Create(ctx context.Context, reviewerID, rentalID, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if reviewerID != rental.RenterID && reviewerID != rental.OwnerID {
		return nil, domain.ErrNotAuthorized
	}
	// Only finished rentals can be reviewed, once per party.
	if rental.Status != domain.RentalStatusCompleted {
		return nil, domain.ErrReviewNotAllowed
	}

	exists, err := s.reviewRepo.ExistsForRental(ctx, rentalID, reviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateReview
	}

	revieweeID := rental.OwnerID
	if reviewerID == rental.OwnerID {
		revieweeID = rental.RenterID
	}

	review := &domain.Review{
		RentalID:   rentalID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		ItemID:     rental.ItemID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviewRepo.CreateWithRatingUpdate(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByItem(ctx, itemID)
}
