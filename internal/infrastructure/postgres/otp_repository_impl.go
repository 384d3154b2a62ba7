package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

type OTPRepository struct {
	pool *pgxpool.Pool
}

func NewOTPRepository(pool *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{pool: pool}
}

// Create stores the code with the timestamps chosen by the caller so that
// expiry is computed from the same clock that later validates it.
func (r *OTPRepository) Create(ctx context.Context, otp *entity.OTPCode) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO otp_codes (user_id, code, via, created_at, expires_at, used)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, otp.UserID, otp.Code, otp.Channel, otp.CreatedAt, otp.ExpiresAt, otp.Used)
	return translate(row.Scan(&otp.ID))
}

func (r *OTPRepository) FindLatestUnused(ctx context.Context, userID, code string) (*entity.OTPCode, error) {
	otp := &entity.OTPCode{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, code, via, created_at, expires_at, used
		FROM otp_codes
		WHERE user_id = $1 AND code = $2 AND used = false
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, userID, code).Scan(&otp.ID, &otp.UserID, &otp.Code, &otp.Channel, &otp.CreatedAt, &otp.ExpiresAt, &otp.Used)
	if err != nil {
		return nil, translate(err)
	}
	return otp, nil
}

func (r *OTPRepository) MarkUsed(ctx context.Context, id int64) error {
	// Matching an already used row still counts as success.
	return expectOne(r.pool.Exec(ctx, `UPDATE otp_codes SET used = true WHERE id = $1`, id))
}

var _ repository.OTPRepository = (*OTPRepository)(nil)
