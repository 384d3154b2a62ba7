package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

type PlanRepository struct {
	pool *pgxpool.Pool
}

func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

func (r *PlanRepository) List(ctx context.Context) ([]entity.SubscriptionPlan, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, price::float8, description, active FROM subscription_plans ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.SubscriptionPlan, error) {
		var p entity.SubscriptionPlan
		err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Active)
		return p, err
	})
}

func (r *PlanRepository) Get(ctx context.Context, id int64) (*entity.SubscriptionPlan, error) {
	p := &entity.SubscriptionPlan{}
	err := r.pool.QueryRow(ctx, `SELECT id, name, price::float8, description, active FROM subscription_plans WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Active)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PlanRepository) Create(ctx context.Context, p *entity.SubscriptionPlan) error {
	return translate(r.pool.QueryRow(ctx, `
		INSERT INTO subscription_plans (name, price, description, active) VALUES ($1, $2, $3, $4) RETURNING id
	`, p.Name, p.Price, p.Description, p.Active).Scan(&p.ID))
}

func (r *PlanRepository) Update(ctx context.Context, p *entity.SubscriptionPlan) error {
	return expectOne(r.pool.Exec(ctx, `
		UPDATE subscription_plans SET name = $1, price = $2, description = $3, active = $4 WHERE id = $5
	`, p.Name, p.Price, p.Description, p.Active, p.ID))
}

func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	return expectOne(r.pool.Exec(ctx, `DELETE FROM subscription_plans WHERE id = $1`, id))
}

var _ repository.PlanRepository = (*PlanRepository)(nil)
