package service

import (
	"context"
	"fmt"
	"strings"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
)

type itemService struct {
	itemRepo   repository.ItemRepository
	reviewRepo repository.ReviewRepository
}

func NewItemService(itemRepo repository.ItemRepository, reviewRepo repository.ReviewRepository) ItemService {
	return &itemService{
		itemRepo:   itemRepo,
		reviewRepo: reviewRepo,
	}
}

func validateItem(it *domain.Item) error {
	if strings.TrimSpace(it.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if it.DailyPrice <= 0 {
		return fmt.Errorf("daily price must be positive")
	}
	if it.SecurityDeposit < 0 {
		return fmt.Errorf("security deposit cannot be negative")
	}
	if it.WeeklyDiscount < 0 || it.WeeklyDiscount > 100 {
		return fmt.Errorf("weekly discount must be between 0 and 100")
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, it *domain.Item) error {
	if err := validateItem(it); err != nil {
		return err
	}
	return s.itemRepo.Create(ctx, it)
}

func (s *itemService) Get(ctx context.Context, id int32) (*domain.Item, []domain.Review, error) {
	item, err := s.itemRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.reviewRepo.ListByItem(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return item, reviews, nil
}

func (s *itemService) Update(ctx context.Context, userID, itemID int32, patch ItemPatch) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, domain.ErrNotAuthorized
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Subcategory != nil {
		item.Subcategory = *patch.Subcategory
	}
	if patch.Size != nil {
		item.Size = *patch.Size
	}
	if patch.Color != nil {
		item.Color = *patch.Color
	}
	if patch.Brand != nil {
		item.Brand = *patch.Brand
	}
	if patch.Condition != nil {
		item.Condition = *patch.Condition
	}
	if patch.DailyPrice != nil {
		item.DailyPrice = *patch.DailyPrice
	}
	if patch.SecurityDeposit != nil {
		item.SecurityDeposit = *patch.SecurityDeposit
	}
	if patch.WeeklyDiscount != nil {
		item.WeeklyDiscount = *patch.WeeklyDiscount
	}
	if patch.Images != nil {
		item.Images = patch.Images
	}

	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, userID, itemID int32) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != userID {
		return domain.ErrNotAuthorized
	}

	// An item with a live rental against it stays listed until the rental
	// reaches a terminal status.
	active, err := s.itemRepo.HasActiveRental(ctx, itemID)
	if err != nil {
		return err
	}
	if active {
		return domain.ErrItemUnavailable
	}

	return s.itemRepo.Delete(ctx, itemID)
}

func (s *itemService) List(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	return s.itemRepo.List(ctx, filter)
}

func (s *itemService) ListMine(ctx context.Context, userID int32) ([]domain.Item, error) {
	return s.itemRepo.ListByOwner(ctx, userID)
}
