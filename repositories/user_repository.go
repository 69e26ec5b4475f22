package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"waco-shop/config"
	"waco-shop/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := config.DB.QueryRow(ctx,
		"SELECT id, name, email, password, provider, created_at FROM users WHERE email = $1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Provider, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	now := time.Now()
	err := config.DB.QueryRow(ctx,
		"INSERT INTO users (name, email, password, provider, created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		u.Name, u.Email, u.Password, u.Provider, now).Scan(&u.ID)
	if err != nil {
		return err
	}
	u.CreatedAt = now
	return nil
}
