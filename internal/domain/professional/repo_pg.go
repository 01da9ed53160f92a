package professional

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const profCols = `id, name, registration, specialty, active, created_at, updated_at`

func (r *repoPG) scanProfessional(row pgx.Row) (*Professional, error) {
	var p Professional
	err := row.Scan(&p.ID, &p.Name, &p.Registration, &p.Specialty, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Professional) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO professional (id, name, registration, specialty, active)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.Name, p.Registration, p.Specialty, p.Active)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Professional, error) {
	return r.scanProfessional(r.pool.QueryRow(ctx, `SELECT `+profCols+` FROM professional WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Professional) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE professional SET name=$2, registration=$3, specialty=$4, active=$5, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Registration, p.Specialty, p.Active)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM professional WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*Professional, int, error) {
	where := ``
	if activeOnly {
		where = ` WHERE active`
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM professional`+where).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+profCols+` FROM professional`+where+`
		ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Professional
	for rows.Next() {
		p, err := r.scanProfessional(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
