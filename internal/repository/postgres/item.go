package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, owner_id, title, description, category, subcategory, size, color, brand, condition, daily_price, security_deposit, weekly_discount, images, status, view_count, created_at, updated_at`

// Images live in a jsonb column, same shape the web client sends.
func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}

func unmarshalImages(raw []byte, into *[]string) {
	if len(raw) == 0 {
		*into = []string{}
		return
	}
	if err := json.Unmarshal(raw, into); err != nil {
		*into = []string{}
	}
}

func scanItem(row interface{ Scan(...any) error }, it *domain.Item) error {
	var images []byte
	err := row.Scan(
		&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.Category, &it.Subcategory,
		&it.Size, &it.Color, &it.Brand, &it.Condition, &it.DailyPrice, &it.SecurityDeposit,
		&it.WeeklyDiscount, &images, &it.Status, &it.ViewCount, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return err
	}
	unmarshalImages(images, &it.Images)
	return nil
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	images, err := marshalImages(it.Images)
	if err != nil {
		return err
	}
	query := `INSERT INTO items (owner_id, title, description, category, subcategory, size, color, brand, condition, daily_price, security_deposit, weekly_discount, images, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	          RETURNING id, created_at, updated_at`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		it.OwnerID, it.Title, it.Description, it.Category, it.Subcategory, it.Size,
		it.Color, it.Brand, it.Condition, it.DailyPrice, it.SecurityDeposit,
		it.WeeklyDiscount, images, domain.ItemStatusAvailable, now, now).
		Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	err := scanItem(r.db.QueryRowContext(ctx, query, id), it)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) GetDetail(ctx context.Context, id int32) (*domain.Item, error) {
	it := &domain.Item{}
	owner := &domain.User{}
	var images []byte
	query := `SELECT i.id, i.owner_id, i.title, i.description, i.category, i.subcategory, i.size, i.color, i.brand, i.condition,
	                 i.daily_price, i.security_deposit, i.weekly_discount, i.images, i.status, i.view_count, i.created_at, i.updated_at,
	                 u.id, u.name, u.avatar, u.campus, u.building, u.rating, u.review_count
	          FROM items i JOIN users u ON i.owner_id = u.id
	          WHERE i.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.Category, &it.Subcategory,
		&it.Size, &it.Color, &it.Brand, &it.Condition, &it.DailyPrice, &it.SecurityDeposit,
		&it.WeeklyDiscount, &images, &it.Status, &it.ViewCount, &it.CreatedAt, &it.UpdatedAt,
		&owner.ID, &owner.Name, &owner.Avatar, &owner.Campus, &owner.Building, &owner.Rating, &owner.ReviewCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	unmarshalImages(images, &it.Images)
	it.Owner = owner

	_, err = r.db.ExecContext(ctx, `UPDATE items SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	it.ViewCount++
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	images, err := marshalImages(it.Images)
	if err != nil {
		return err
	}
	query := `UPDATE items SET title=$1, description=$2, category=$3, subcategory=$4, size=$5, color=$6, brand=$7, condition=$8,
	                 daily_price=$9, security_deposit=$10, weekly_discount=$11, images=$12, updated_at=$13
	          WHERE id=$14`
	res, err := r.db.ExecContext(ctx, query,
		it.Title, it.Description, it.Category, it.Subcategory, it.Size, it.Color,
		it.Brand, it.Condition, it.DailyPrice, it.SecurityDeposit, it.WeeklyDiscount,
		images, time.Now(), it.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context, f repository.ItemFilter) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status = $1`
	args := []interface{}{domain.ItemStatusAvailable}
	argIdx := 2

	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	if f.Size != "" {
		query += fmt.Sprintf(" AND size = $%d", argIdx)
		args = append(args, f.Size)
		argIdx++
	}
	if f.MinPrice > 0 {
		query += fmt.Sprintf(" AND daily_price >= $%d", argIdx)
		args = append(args, f.MinPrice)
		argIdx++
	}
	if f.MaxPrice > 0 {
		query += fmt.Sprintf(" AND daily_price <= $%d", argIdx)
		args = append(args, f.MaxPrice)
		argIdx++
	}
	if f.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *itemRepository) HasActiveRental(ctx context.Context, itemID int32) (bool, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE item_id = $1 AND status IN ($2, $3)`
	err := r.db.QueryRowContext(ctx, query, itemID, domain.RentalStatusPending, domain.RentalStatusConfirmed).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
