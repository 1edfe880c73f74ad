package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// UserRepo implements the UserRepository interface using SQLite.
type UserRepo struct{ db *sql.DB }

// NewUserRepo creates a new SQLite-backed user repository.
func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `SELECT id, username, password FROM users WHERE id = ? LIMIT 1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `SELECT id, username, password FROM users WHERE username = ? LIMIT 1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetByUsername: QueryRowContext: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `INSERT INTO users (username, password) VALUES (?, ?)`
	res, err := repo.db.ExecContext(ctx, query, user.Username, user.Password)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	user.ID = id
	return nil
}
