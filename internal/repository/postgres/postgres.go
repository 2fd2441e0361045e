package postgres

import (
	"database/sql"

	"clothshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ItemRepository
	repository.RentalRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		UserRepository:   NewUserRepository(db),
		ItemRepository:   NewItemRepository(db),
		RentalRepository: NewRentalRepository(db),
		ReviewRepository: NewReviewRepository(db),
	}
}
