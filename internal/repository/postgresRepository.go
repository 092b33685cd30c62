package repository

import (
	"context"
	"errors"

	"github.com/RaikyD/order-notify-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is the durable store variant, one row per order.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (p *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o := domain.Order{ID: id}
	err := p.pool.QueryRow(ctx,
		`SELECT name, phone, status FROM orders WHERE id = $1`,
		id,
	).Scan(&o.Name, &o.Phone, &o.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (p *PostgresRepository) UpsertOrder(ctx context.Context, o *domain.Order) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO orders (id, name, phone, status)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET name = EXCLUDED.name,
		     phone = EXCLUDED.phone,
		     status = EXCLUDED.status,
		     updated_at = now()`,
		o.ID, o.Name, o.Phone, o.Status,
	)
	return err
}

func (p *PostgresRepository) SetStatus(ctx context.Context, id string, st domain.Status) (*domain.Order, error) {
	o := domain.Order{ID: id, Status: st}
	err := p.pool.QueryRow(ctx,
		`UPDATE orders SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING name, phone`,
		id, st,
	).Scan(&o.Name, &o.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
