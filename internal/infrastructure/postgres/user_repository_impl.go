package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, COALESCE(phone_number, ''), role, password_hash,
	first_name, last_name, address, city, pincode, gender, profile_image, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Password,
		&u.FirstName, &u.LastName, &u.Address, &u.City, &u.Pincode, &u.Gender, &u.ProfileImage,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User, profile *entity.ProviderProfile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (username, email, phone_number, role, password_hash,
			first_name, last_name, address, city, pincode, gender, profile_image)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.Phone, u.Role, u.Password,
		u.FirstName, u.LastName, u.Address, u.City, u.Pincode, u.Gender, u.ProfileImage)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return translate(err)
	}

	if profile != nil {
		profile.UserID = u.ID
		if err := insertProviderProfile(ctx, tx, profile); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetByPhone matches the stored number exactly. Phone numbers are not unique in the
// schema, so the oldest account wins when several share one.
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE phone_number = $1
		ORDER BY created_at
		LIMIT 1
	`, phone))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	return expectOne(r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, phone_number = NULLIF($3, ''), first_name = $4, last_name = $5,
			address = $6, city = $7, pincode = $8, gender = $9, profile_image = $10, updated_at = $11
		WHERE id = $12
	`, u.Username, u.Email, u.Phone, u.FirstName, u.LastName,
		u.Address, u.City, u.Pincode, u.Gender, u.ProfileImage, u.UpdatedAt, u.ID))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return expectOne(r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, hash, id))
}

func (r *UserRepository) CountByRole(ctx context.Context, role entity.Role) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, role).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
