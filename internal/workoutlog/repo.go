package workoutlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bkralj/liftlog/internal/db"
	"github.com/bkralj/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("workout record not found")

// ListParams filter the listed records. The zero value means a full scan
// in insertion order, which is what the dashboard render path uses.
type ListParams struct {
	Client   string
	Exercise string
	From     *time.Time
	To       *time.Time
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// EnsureSchema re-applies the idempotent schema. The dashboard calls it at
// the start of every render cycle, so a previously failed cycle heals here.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	return db.EnsureSchema(ctx, r.db)
}

func (r *Repo) Add(ctx context.Context, record WorkoutRecord) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRowContext(
		ctx,
		`INSERT INTO workout_record
				(client, date, exercise, sets, reps, weight, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING id;`,
		record.Client, record.Date, record.Exercise,
		record.Sets, record.Reps, record.Weight, record.CreatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert workout record: %w", err)
	}

	span.SetAttributes(attribute.Int("record.id", id))

	record.ID = id
	return &record, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, client, date, exercise, sets, reps, weight, created_at
			FROM workout_record
			WHERE id = ?;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := rows2records(rows)
	if err != nil {
		return nil, err
	}

	if len(records) != 1 {
		return nil, ErrRecordNotFound
	}

	return &records[0], nil
}

// ListAll returns records in insertion order. With zero-value params this
// is the full-scan read the dashboard runs on every render.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client", params.Client))
	span.SetAttributes(attribute.String("exercise", params.Exercise))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, client, date, exercise, sets, reps, weight, created_at
			FROM workout_record
			WHERE (? = '' OR client = ?)
			AND (? = '' OR exercise = ?)
			AND (? = 0 OR created_at >= ?)
			AND (? = 0 OR created_at <= ?)
			ORDER BY id;`,
		params.Client, params.Client,
		params.Exercise, params.Exercise,
		boolArg(params.From != nil), timeArg(params.From),
		boolArg(params.To != nil), timeArg(params.To),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	records, err := rows2records(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2records: %w", err)
	}
	return records, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_record WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM workout_record
			WHERE (? = '' OR client = ?)
			AND (? = '' OR exercise = ?)
			AND (? = 0 OR created_at >= ?)
			AND (? = 0 OR created_at <= ?);`,
		params.Client, params.Client,
		params.Exercise, params.Exercise,
		boolArg(params.From != nil), timeArg(params.From),
		boolArg(params.To != nil), timeArg(params.To),
	).Scan(&count)
	if err != nil {
		return -1, fmt.Errorf("count workout records: %w", err)
	}
	return count, nil
}

func rows2records(rows *sql.Rows) ([]WorkoutRecord, error) {
	var records []WorkoutRecord
	for rows.Next() {
		var rec WorkoutRecord
		if err := rows.Scan(
			&rec.ID, &rec.Client, &rec.Date, &rec.Exercise,
			&rec.Sets, &rec.Reps, &rec.Weight, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if records == nil {
		records = make([]WorkoutRecord, 0)
	}

	return records, nil
}

func boolArg(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timeArg(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
