package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

const serviceColumns = `id, name, slug, description, category, image, optional_fields, active`

func scanService(row pgx.Row) (*entity.Service, error) {
	s := &entity.Service{}
	if err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Category, &s.Image, &s.OptionalFields, &s.Active); err != nil {
		return nil, translate(err)
	}
	if s.OptionalFields == nil {
		s.OptionalFields = map[string]any{}
	}
	s.Options = []entity.ServiceOption{}
	return s, nil
}

const optionColumns = `id, service_id, duration_label, duration_hours, price::float8`

func collectOptions(rows pgx.Rows) ([]entity.ServiceOption, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ServiceOption, error) {
		var o entity.ServiceOption
		err := row.Scan(&o.ID, &o.ServiceID, &o.DurationLabel, &o.DurationHours, &o.Price)
		return o, err
	})
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]entity.Service, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id`)
	if err != nil {
		return nil, err
	}
	out := []entity.Service{}
	index := map[int64]int{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		index[s.ID] = len(out)
		out = append(out, *s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	opts, err := r.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range opts {
		if i, ok := index[o.ServiceID]; ok {
			out[i].Options = append(out[i].Options, o)
		}
	}
	return out, nil
}

func (r *CatalogRepository) GetService(ctx context.Context, id int64) (*entity.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+optionColumns+` FROM service_options WHERE service_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	opts, err := collectOptions(rows)
	if err != nil {
		return nil, err
	}
	s.Options = opts
	return s, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *entity.Service) error {
	return translate(r.pool.QueryRow(ctx, `
		INSERT INTO services (name, slug, description, category, image, optional_fields, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, s.Name, s.Slug, s.Description, s.Category, s.Image, s.OptionalFields, s.Active).Scan(&s.ID))
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s *entity.Service) error {
	return expectOne(r.pool.Exec(ctx, `
		UPDATE services
		SET name = $1, slug = $2, description = $3, category = $4, image = $5, optional_fields = $6, active = $7
		WHERE id = $8
	`, s.Name, s.Slug, s.Description, s.Category, s.Image, s.OptionalFields, s.Active, s.ID))
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id int64) error {
	return expectOne(r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id))
}

func (r *CatalogRepository) ListOptions(ctx context.Context) ([]entity.ServiceOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+optionColumns+` FROM service_options ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectOptions(rows)
}

func (r *CatalogRepository) GetOption(ctx context.Context, id int64) (*entity.ServiceOption, error) {
	o := &entity.ServiceOption{}
	err := r.pool.QueryRow(ctx, `SELECT `+optionColumns+` FROM service_options WHERE id = $1`, id).
		Scan(&o.ID, &o.ServiceID, &o.DurationLabel, &o.DurationHours, &o.Price)
	if err != nil {
		return nil, translate(err)
	}
	return o, nil
}

func (r *CatalogRepository) CreateOption(ctx context.Context, o *entity.ServiceOption) error {
	return translate(r.pool.QueryRow(ctx, `
		INSERT INTO service_options (service_id, duration_label, duration_hours, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, o.ServiceID, o.DurationLabel, o.DurationHours, o.Price).Scan(&o.ID))
}

func (r *CatalogRepository) UpdateOption(ctx context.Context, o *entity.ServiceOption) error {
	return expectOne(r.pool.Exec(ctx, `
		UPDATE service_options SET service_id = $1, duration_label = $2, duration_hours = $3, price = $4
		WHERE id = $5
	`, o.ServiceID, o.DurationLabel, o.DurationHours, o.Price, o.ID))
}

func (r *CatalogRepository) DeleteOption(ctx context.Context, id int64) error {
	return expectOne(r.pool.Exec(ctx, `DELETE FROM service_options WHERE id = $1`, id))
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)
