package service

import (
	"context"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
)

// TokenPair bundles the access and refresh tokens issued on login.
type TokenPair struct {
	Access  string `json:"token"`
	Refresh string `json:"refresh_token"`
}

// ProfileUpdate carries optional profile fields; nil means "leave unchanged".
type ProfileUpdate struct {
	Name     *string
	Phone    *string
	Bio      *string
	Campus   *string
	Building *string
	Avatar   *string
}

// ItemPatch carries optional item fields; nil means "leave unchanged".
type ItemPatch struct {
	Title           *string
	Description     *string
	Category        *string
	Subcategory     *string
	Size            *string
	Color           *string
	Brand           *string
	Condition       *string
	DailyPrice      *float64
	SecurityDeposit *float64
	WeeklyDiscount  *int32
	Images          []string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password, phone, campus, building string) (*domain.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	GetUser(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, patch ProfileUpdate) (*domain.User, error)
}

type ItemService interface {
	Create(ctx context.Context, item *domain.Item) error
	Get(ctx context.Context, id int32) (*domain.Item, []domain.Review, error)
	Update(ctx context.Context, userID, itemID int32, patch ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, userID, itemID int32) error
	List(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error)
	ListMine(ctx context.Context, userID int32) ([]domain.Item, error)
}

type RentalService interface {
	Create(ctx context.Context, renterID, itemID int32, startDate, endDate, paymentRef string) (*domain.Rental, error)
	Accept(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	Reject(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	Complete(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	Get(ctx context.Context, userID, rentalID int32) (*domain.Rental, error)
	ListAsRenter(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListAsOwner(ctx context.Context, userID int32) ([]domain.Rental, error)
}

type ReviewService interface {
	Create(ctx context.Context, reviewerID, rentalID, rating int32, comment string) (*domain.Review, error)
	ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error)
}

type PaymentService interface {
	CreateOrder(ctx context.Context, amount float64) (*domain.PaymentOrder, error)
}

type EmailService interface {
	SendRentalRequested(ctx context.Context, ownerEmail, renterName, itemTitle string) error
	SendRentalAccepted(ctx context.Context, renterEmail, itemTitle, ownerName string) error
	SendRentalRejected(ctx context.Context, renterEmail, itemTitle, ownerName string) error
	SendRentalCompleted(ctx context.Context, email, itemTitle string, totalAmount float64) error
	SendReturnReminder(ctx context.Context, renterEmail, itemTitle, endDate string) error
	SendOverdueNotice(ctx context.Context, email, itemTitle, endDate string) error
}
