package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `SELECT id, username, password FROM users WHERE id = $1 LIMIT 1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `SELECT id, username, password FROM users WHERE username = $1 LIMIT 1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, user.Username, user.Password).Scan(&user.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
