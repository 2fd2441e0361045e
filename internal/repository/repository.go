package repository

import (
	"context"

	"clothshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// ItemFilter narrows List results. Zero values mean "no constraint".
type ItemFilter struct {
	Category string
	Size     string
	MinPrice float64
	MaxPrice float64
	Search   string
	Limit    int32
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	// GetDetail joins the owner profile and bumps the view counter.
	GetDetail(ctx context.Context, id int32) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Item, error)
	// HasActiveRental reports whether any rental in a non-terminal status
	// references the item.
	HasActiveRental(ctx context.Context, itemID int32) (bool, error)
}

type RentalRepository interface {
	// CreateWithItemHold inserts the rental and flips the item to pending in
	// one transaction. The item update is guarded by status = 'available';
	// a concurrent create against the same item loses the race and gets
	// domain.ErrItemUnavailable with no partial writes.
	CreateWithItemHold(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// UpdateStatusWithItem performs the paired (rental, item) status write as
	// one transaction. The rental update is guarded by status = from;
	// zero rows affected yields domain.ErrInvalidTransition.
	UpdateStatusWithItem(ctx context.Context, rentalID int32, from, to domain.RentalStatus, itemID int32, itemStatus domain.ItemStatus) error
	ListByRenter(ctx context.Context, renterID int32) ([]domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Rental, error)
	// ListConfirmedEndingOn returns confirmed rentals whose end date matches
	// the yyyy-mm-dd argument ("" selects rentals already past due).
	ListConfirmedEndingOn(ctx context.Context, date string) ([]domain.Rental, error)
	ListConfirmedOverdue(ctx context.Context, date string) ([]domain.Rental, error)
}

type ReviewRepository interface {
	// CreateWithRatingUpdate inserts the review and recomputes the
	// reviewee's aggregate rating and review count in one transaction.
	CreateWithRatingUpdate(ctx context.Context, review *domain.Review) error
	ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error)
	ExistsForRental(ctx context.Context, rentalID, reviewerID int32) (bool, error)
}
