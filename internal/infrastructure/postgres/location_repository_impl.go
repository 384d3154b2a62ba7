package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func (r *LocationRepository) ListStates(ctx context.Context) ([]entity.State, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, active FROM states ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.State, error) {
		var s entity.State
		err := row.Scan(&s.ID, &s.Name, &s.Active)
		return s, err
	})
}

func (r *LocationRepository) GetState(ctx context.Context, id int64) (*entity.State, error) {
	s := &entity.State{}
	err := r.pool.QueryRow(ctx, `SELECT id, name, active FROM states WHERE id = $1`, id).Scan(&s.ID, &s.Name, &s.Active)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (r *LocationRepository) CreateState(ctx context.Context, s *entity.State) error {
	return translate(r.pool.QueryRow(ctx, `INSERT INTO states (name, active) VALUES ($1, $2) RETURNING id`,
		s.Name, s.Active).Scan(&s.ID))
}

func (r *LocationRepository) UpdateState(ctx context.Context, s *entity.State) error {
	return expectOne(r.pool.Exec(ctx, `UPDATE states SET name = $1, active = $2 WHERE id = $3`, s.Name, s.Active, s.ID))
}

func (r *LocationRepository) DeleteState(ctx context.Context, id int64) error {
	return expectOne(r.pool.Exec(ctx, `DELETE FROM states WHERE id = $1`, id))
}

func (r *LocationRepository) ListCities(ctx context.Context) ([]entity.City, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, state_id, name, image, active FROM cities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.City, error) {
		var c entity.City
		err := row.Scan(&c.ID, &c.StateID, &c.Name, &c.Image, &c.Active)
		return c, err
	})
}

func (r *LocationRepository) GetCity(ctx context.Context, id int64) (*entity.City, error) {
	c := &entity.City{}
	err := r.pool.QueryRow(ctx, `SELECT id, state_id, name, image, active FROM cities WHERE id = $1`, id).
		Scan(&c.ID, &c.StateID, &c.Name, &c.Image, &c.Active)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *LocationRepository) CreateCity(ctx context.Context, c *entity.City) error {
	return translate(r.pool.QueryRow(ctx, `
		INSERT INTO cities (state_id, name, image, active) VALUES ($1, $2, $3, $4) RETURNING id
	`, c.StateID, c.Name, c.Image, c.Active).Scan(&c.ID))
}

func (r *LocationRepository) UpdateCity(ctx context.Context, c *entity.City) error {
	return expectOne(r.pool.Exec(ctx, `
		UPDATE cities SET state_id = $1, name = $2, image = $3, active = $4 WHERE id = $5
	`, c.StateID, c.Name, c.Image, c.Active, c.ID))
}

func (r *LocationRepository) DeleteCity(ctx context.Context, id int64) error {
	return expectOne(r.pool.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id))
}

var _ repository.LocationRepository = (*LocationRepository)(nil)
