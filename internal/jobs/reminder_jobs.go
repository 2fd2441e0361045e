package jobs

import (
	"context"
	"time"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/logger"
)

// SendReturnReminders emails renters whose confirmed rentals end today.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		rentals, err := jr.store.ListConfirmedEndingOn(ctx, today)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to list rentals ending today", "error", err)
			return
		}

		sent := 0
		for _, rt := range rentals {
			renter, item, ok := jr.lookupParties(ctx, &rt)
			if !ok {
				continue
			}
			if err := jr.email.SendReturnReminder(ctx, renter.Email, item.Title, rt.EndDate); err != nil {
				logger.ErrorContext(ctx, "Failed to send return reminder",
					"rental_id", rt.ID, "renter_id", rt.RenterID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Return reminders sent", "count", sent, "date", today)
	})
}

// SendOverdueNotices emails both parties of confirmed rentals whose end date
// has passed. The rental stays confirmed until the owner marks it completed.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		rentals, err := jr.store.ListConfirmedOverdue(ctx, today)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for _, rt := range rentals {
			renter, item, ok := jr.lookupParties(ctx, &rt)
			if !ok {
				continue
			}
			owner, err := jr.store.UserRepository.GetByID(ctx, rt.OwnerID)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to load owner for overdue rental",
					"rental_id", rt.ID, "owner_id", rt.OwnerID, "error", err)
				continue
			}

			if err := jr.email.SendOverdueNotice(ctx, renter.Email, item.Title, rt.EndDate); err != nil {
				logger.ErrorContext(ctx, "Failed to send overdue notice to renter",
					"rental_id", rt.ID, "error", err)
			}
			if err := jr.email.SendOverdueNotice(ctx, owner.Email, item.Title, rt.EndDate); err != nil {
				logger.ErrorContext(ctx, "Failed to send overdue notice to owner",
					"rental_id", rt.ID, "error", err)
			}
			sent++
		}
		logger.Info("Overdue notices sent", "count", sent, "date", today)
	})
}

func (jr *JobRunner) lookupParties(ctx context.Context, rt *domain.Rental) (*domain.User, *domain.Item, bool) {
	renter, err := jr.store.UserRepository.GetByID(ctx, rt.RenterID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load renter for rental",
			"rental_id", rt.ID, "renter_id", rt.RenterID, "error", err)
		return nil, nil, false
	}
	item, err := jr.store.ItemRepository.GetByID(ctx, rt.ItemID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load item for rental",
			"rental_id", rt.ID, "item_id", rt.ItemID, "error", err)
		return nil, nil, false
	}
	return renter, item, true
}
