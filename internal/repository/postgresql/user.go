package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/db"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByEmail is the only read that selects the password column; callers
// must not serialize the returned hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var row repository.UserRow
	err := r.db.Get(ctx, &row, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &model.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Password:  row.Password,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, email, password, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, u.ID, u.Name, u.Email, u.Password, u.Role, u.CreatedAt, u.UpdatedAt)
	return err
}
