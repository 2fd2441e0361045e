package postgres_test

import (
	"context"
	"testing"
	"time"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Email, user.PasswordHash, "", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(1, time.Now(), time.Now()))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		user := &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "phone", "avatar", "bio",
			"campus", "building", "rating", "review_count", "created_at", "updated_at"}).
			AddRow(1, "Asha", "asha@example.com", "hash", "", "", "", "North", "Block A", 4.5, 3, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("asha@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "asha@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "Asha", user.Name)
		assert.Equal(t, 4.5, user.Rating)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
