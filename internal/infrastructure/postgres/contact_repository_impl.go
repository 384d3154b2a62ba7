package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, m *entity.ContactMessage) error {
	if m.Status == "" {
		m.Status = entity.ContactStatusUnread
	}
	return translate(r.pool.QueryRow(ctx, `
		INSERT INTO contact_messages (full_name, phone_number, email, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_at
	`, m.FullName, m.PhoneNumber, m.Email, m.Message, m.Status).Scan(&m.ID, &m.SubmittedAt))
}

func (r *ContactRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, phone_number, email, message, submitted_at, status
		FROM contact_messages
		ORDER BY submitted_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ContactMessage, error) {
		var m entity.ContactMessage
		err := row.Scan(&m.ID, &m.FullName, &m.PhoneNumber, &m.Email, &m.Message, &m.SubmittedAt, &m.Status)
		return m, err
	})
}

func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM contact_messages`).Scan(&n)
	return n, err
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
