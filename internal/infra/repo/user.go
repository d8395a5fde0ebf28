package repo

import (
	"context"
	"errors"

	"paradise-inn/internal/domain/user"
	"paradise-inn/internal/infra"
	"paradise-inn/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) usecase.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) (*usecase.UserView, error) {
	const q = `
		INSERT INTO users (email, name, phone_number, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, q,
		u.Email().Value(), u.Name(), u.PhoneNumber(), u.PasswordHash(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("email already taken", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert user", err)
	}

	return &usecase.UserView{
		ID:          id,
		Email:       u.Email().Value(),
		Name:        u.Name(),
		PhoneNumber: u.PhoneNumber(),
		Role:        u.Role().String(),
	}, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, email).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check email existence", err)
	}
	return exists, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*usecase.UserView, string, error) {
	const q = `
		SELECT id, email, name, phone_number, password_hash, role
		FROM users
		WHERE email = $1`

	var (
		view usecase.UserView
		hash string
	)
	err := r.pool.QueryRow(ctx, q, email).Scan(
		&view.ID, &view.Email, &view.Name, &view.PhoneNumber, &hash, &view.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*usecase.UserView, error) {
	const q = `
		SELECT id, email, name, phone_number, role
		FROM users
		WHERE id = $1`

	var view usecase.UserView
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.PhoneNumber, &view.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]usecase.UserView, error) {
	const q = `
		SELECT id, email, name, phone_number, role
		FROM users
		ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var views []usecase.UserView
	for rows.Next() {
		var view usecase.UserView
		if err := rows.Scan(&view.ID, &view.Email, &view.Name, &view.PhoneNumber, &view.Role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return views, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
