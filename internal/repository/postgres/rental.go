package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// start_date/end_date are DATE columns; selected as text so scans yield the
// yyyy-mm-dd wire form instead of the driver's time.Time rendering.
const rentalColumns = `id, item_id, renter_id, owner_id, start_date::text, end_date::text, total_days, daily_rate, total_amount, deposit_amount, payment_ref, status, created_at, updated_at`

func (r *rentalRepository) CreateWithItemHold(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The guarded update serializes the availability check: of two
	// concurrent creates against the same item, the second sees zero rows
	// affected and aborts before its rental row is committed.
	res, err := tx.ExecContext(ctx,
		`UPDATE items SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		domain.ItemStatusPending, time.Now(), rt.ItemID, domain.ItemStatusAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemUnavailable
	}

	now := time.Now()
	err = tx.QueryRowContext(ctx,
		`INSERT INTO rentals (item_id, renter_id, owner_id, start_date, end_date, total_days, daily_rate, total_amount, deposit_amount, payment_ref, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		rt.ItemID, rt.RenterID, rt.OwnerID, rt.StartDate, rt.EndDate, rt.TotalDays,
		rt.DailyRate, rt.TotalAmount, rt.DepositAmount, rt.PaymentRef,
		domain.RentalStatusPending, now, now).
		Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return err
	}
	rt.Status = domain.RentalStatusPending

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.ItemID, &rt.RenterID, &rt.OwnerID, &rt.StartDate, &rt.EndDate,
		&rt.TotalDays, &rt.DailyRate, &rt.TotalAmount, &rt.DepositAmount,
		&rt.PaymentRef, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) UpdateStatusWithItem(ctx context.Context, rentalID int32, from, to domain.RentalStatus, itemID int32, itemStatus domain.ItemStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Guarded by the from-state so a concurrent transition on the same
	// rental cannot apply twice.
	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, time.Now(), rentalID, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrInvalidTransition
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET status = $1, updated_at = $2 WHERE id = $3`,
		itemStatus, time.Now(), itemID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

const rentalListColumns = `r.id, r.item_id, r.renter_id, r.owner_id, r.start_date::text, r.end_date::text, r.total_days, r.daily_rate, r.total_amount, r.deposit_amount, r.payment_ref, r.status, r.created_at, r.updated_at, i.title, i.images`

func (r *rentalRepository) listWithParty(ctx context.Context, query string, id int32, asRenter bool) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var images []byte
		var partyName string
		if err := rows.Scan(
			&rt.ID, &rt.ItemID, &rt.RenterID, &rt.OwnerID, &rt.StartDate, &rt.EndDate,
			&rt.TotalDays, &rt.DailyRate, &rt.TotalAmount, &rt.DepositAmount,
			&rt.PaymentRef, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt,
			&rt.ItemTitle, &images, &partyName); err != nil {
			return nil, err
		}
		unmarshalImages(images, &rt.ItemImages)
		// ListByRenter joins the owner's name, ListByOwner the renter's.
		if asRenter {
			rt.OwnerName = partyName
		} else {
			rt.RenterName = partyName
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalListColumns + `, u.name
	          FROM rentals r
	          JOIN items i ON r.item_id = i.id
	          JOIN users u ON r.owner_id = u.id
	          WHERE r.renter_id = $1
	          ORDER BY r.created_at DESC`
	return r.listWithParty(ctx, query, renterID, true)
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalListColumns + `, u.name
	          FROM rentals r
	          JOIN items i ON r.item_id = i.id
	          JOIN users u ON r.renter_id = u.id
	          WHERE r.owner_id = $1
	          ORDER BY r.created_at DESC`
	return r.listWithParty(ctx, query, ownerID, false)
}

func (r *rentalRepository) listConfirmedByEndDate(ctx context.Context, cmp, date string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND end_date ` + cmp + ` $2`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusConfirmed, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.ItemID, &rt.RenterID, &rt.OwnerID, &rt.StartDate, &rt.EndDate,
			&rt.TotalDays, &rt.DailyRate, &rt.TotalAmount, &rt.DepositAmount,
			&rt.PaymentRef, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListConfirmedEndingOn(ctx context.Context, date string) ([]domain.Rental, error) {
	return r.listConfirmedByEndDate(ctx, "=", date)
}

func (r *rentalRepository) ListConfirmedOverdue(ctx context.Context, date string) ([]domain.Rental, error) {
	return r.listConfirmedByEndDate(ctx, "<", date)
}
