package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, professional_id, contact_id, contact_name, scheduled_at,
	duration_minutes, status, notes, created_at, updated_at`

func (r *repoPG) scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.ProfessionalID, &a.ContactID, &a.ContactName, &a.ScheduledAt,
		&a.DurationMinutes, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, professional_id, contact_id, contact_name,
			scheduled_at, duration_minutes, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.ProfessionalID, a.ContactID, a.ContactName,
		a.ScheduledAt, a.DurationMinutes, a.Status, a.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return r.scanAppointment(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointment SET contact_id=$2, contact_name=$3, scheduled_at=$4,
			duration_minutes=$5, status=$6, notes=$7, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.ContactID, a.ContactName, a.ScheduledAt,
		a.DurationMinutes, a.Status, a.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByProfessional(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE professional_id = $1 AND scheduled_at >= $2 AND scheduled_at < $3
		ORDER BY scheduled_at, id`, professionalID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) ListByContact(ctx context.Context, contactID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment WHERE contact_id = $1`, contactID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE contact_id = $1
		ORDER BY scheduled_at DESC, id LIMIT $2 OFFSET $3`, contactID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// The status fragment is built from the engine's own predicate so the store
// pre-filter and the detector can never disagree; the literals are
// engine-owned constants, not user input.
func (r *repoPG) ListCandidatesInRange(ctx context.Context, professionalID uuid.UUID, w Window) ([]*Appointment, error) {
	query := `
		SELECT ` + apptCols + ` FROM appointment
		WHERE professional_id = $1
		  AND status NOT IN ` + SQLInclusionClause(ExcludedStatusesForConflictCheck()) + `
		  AND scheduled_at < $2
		  AND scheduled_at + make_interval(mins => duration_minutes) > $3
		ORDER BY scheduled_at, id`
	rows, err := r.pool.Query(ctx, query, professionalID, w.End, w.Start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Appointment, error) {
	var items []*Appointment
	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
