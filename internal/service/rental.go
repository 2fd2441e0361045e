package service

import (
	"context"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/logger"
	"clothshare-backend/internal/pricing"
	"clothshare-backend/internal/repository"
)

type rentalEvent string

const (
	eventAccept   rentalEvent = "accept"
	eventReject   rentalEvent = "reject"
	eventComplete rentalEvent = "complete"
)

type actorRule int

const (
	actorOwner actorRule = iota
	actorOwnerOrRenter
)

// transition describes one legal rental status change and its paired item
// status side effect. All transitions are dispatched through the single
// table below; handlers never encode status rules themselves.
type transition struct {
	from  domain.RentalStatus
	to    domain.RentalStatus
	item  domain.ItemStatus
	actor actorRule
}

var transitions = map[rentalEvent]transition{
	eventAccept:   {from: domain.RentalStatusPending, to: domain.RentalStatusConfirmed, item: domain.ItemStatusRented, actor: actorOwner},
	eventReject:   {from: domain.RentalStatusPending, to: domain.RentalStatusRejected, item: domain.ItemStatusAvailable, actor: actorOwner},
	eventComplete: {from: domain.RentalStatusConfirmed, to: domain.RentalStatusCompleted, item: domain.ItemStatusAvailable, actor: actorOwnerOrRenter},
}

type rentalService struct {
	rentalRepo repository.RentalRepository
	itemRepo   repository.ItemRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
	}
}

// validateRequest checks the preconditions for a new rental and prices it.
// No side effects: the caller performs the actual creation.
func validateRequest(item *domain.Item, requesterID int32, startDate, endDate string) (pricing.Quote, error) {
	if item.Status != domain.ItemStatusAvailable {
		return pricing.Quote{}, domain.ErrItemUnavailable
	}
	if requesterID == item.OwnerID {
		return pricing.Quote{}, domain.ErrSelfRentalForbidden
	}
	return pricing.CalculateStrings(startDate, endDate, item.DailyPrice, item.WeeklyDiscount)
}

func (s *rentalService) Create(ctx context.Context, renterID, itemID int32, startDate, endDate, paymentRef string) (*domain.Rental, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	quote, err := validateRequest(item, renterID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		ItemID:        itemID,
		RenterID:      renterID,
		OwnerID:       item.OwnerID,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalDays:     quote.Days,
		DailyRate:     item.DailyPrice,
		TotalAmount:   quote.Total,
		DepositAmount: item.SecurityDeposit,
		PaymentRef:    paymentRef,
		Status:        domain.RentalStatusPending,
	}

	// The repository re-checks availability inside the transaction; the
	// validation above can lose a race against a concurrent create.
	if err := s.rentalRepo.CreateWithItemHold(ctx, rental); err != nil {
		return nil, err
	}

	s.notifyRequested(ctx, rental, item)

	return rental, nil
}

func (s *rentalService) Accept(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	return s.dispatch(ctx, actorID, rentalID, eventAccept)
}

func (s *rentalService) Reject(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	return s.dispatch(ctx, actorID, rentalID, eventReject)
}

func (s *rentalService) Complete(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	return s.dispatch(ctx, actorID, rentalID, eventComplete)
}

// dispatch applies one event from the transition table. The actor check
// precedes the state check so an outsider always gets ErrNotAuthorized, never
// a hint about the rental's current status.
func (s *rentalService) dispatch(ctx context.Context, actorID, rentalID int32, ev rentalEvent) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	tr := transitions[ev]

	switch tr.actor {
	case actorOwner:
		if actorID != rt.OwnerID {
			return nil, domain.ErrNotAuthorized
		}
	case actorOwnerOrRenter:
		if actorID != rt.OwnerID && actorID != rt.RenterID {
			return nil, domain.ErrNotAuthorized
		}
	}

	if rt.Status != tr.from {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.rentalRepo.UpdateStatusWithItem(ctx, rt.ID, tr.from, tr.to, rt.ItemID, tr.item); err != nil {
		return nil, err
	}
	rt.Status = tr.to

	s.notifyTransition(ctx, rt, ev)

	return rt, nil
}

func (s *rentalService) Get(ctx context.Context, userID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.RenterID != userID && rt.OwnerID != userID {
		return nil, domain.ErrNotAuthorized
	}
	return rt, nil
}

func (s *rentalService) ListAsRenter(ctx context.Context, userID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByRenter(ctx, userID)
}

func (s *rentalService) ListAsOwner(ctx context.Context, userID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByOwner(ctx, userID)
}

// Notifications are best effort: a mail failure never rolls back a committed
// transition.
func (s *rentalService) notifyRequested(ctx context.Context, rt *domain.Rental, item *domain.Item) {
	owner, err := s.userRepo.GetByID(ctx, rt.OwnerID)
	if err != nil {
		logger.Warn("Skipping rental request notification", "rental_id", rt.ID, "error", err)
		return
	}
	renter, err := s.userRepo.GetByID(ctx, rt.RenterID)
	if err != nil {
		logger.Warn("Skipping rental request notification", "rental_id", rt.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendRentalRequested(ctx, owner.Email, renter.Name, item.Title); err != nil {
		logger.Warn("Failed to send rental request notification", "rental_id", rt.ID, "error", err)
	}
}

func (s *rentalService) notifyTransition(ctx context.Context, rt *domain.Rental, ev rentalEvent) {
	item, err := s.itemRepo.GetByID(ctx, rt.ItemID)
	if err != nil {
		logger.Warn("Skipping rental notification", "rental_id", rt.ID, "event", ev, "error", err)
		return
	}
	owner, err := s.userRepo.GetByID(ctx, rt.OwnerID)
	if err != nil {
		logger.Warn("Skipping rental notification", "rental_id", rt.ID, "event", ev, "error", err)
		return
	}
	renter, err := s.userRepo.GetByID(ctx, rt.RenterID)
	if err != nil {
		logger.Warn("Skipping rental notification", "rental_id", rt.ID, "event", ev, "error", err)
		return
	}

	switch ev {
	case eventAccept:
		err = s.emailSvc.SendRentalAccepted(ctx, renter.Email, item.Title, owner.Name)
	case eventReject:
		err = s.emailSvc.SendRentalRejected(ctx, renter.Email, item.Title, owner.Name)
	case eventComplete:
		if err = s.emailSvc.SendRentalCompleted(ctx, owner.Email, item.Title, rt.TotalAmount); err == nil {
			err = s.emailSvc.SendRentalCompleted(ctx, renter.Email, item.Title, rt.TotalAmount)
		}
	}
	if err != nil {
		logger.Warn("Failed to send rental notification", "rental_id", rt.ID, "event", ev, "error", err)
	}
}
