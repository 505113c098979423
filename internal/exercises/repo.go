package exercises

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/bkralj/liftlog/internal/telemetry/tracing"
)

// goal2types maps a fitness goal to the catalog exercise types it covers.
// Unknown goals fall back to strength.
var goal2types = map[string][]string{
	"strength":    {"Strength", "Powerlifting"},
	"cardio":      {"Cardio", "Plyometrics"},
	"flexibility": {"Stretching"},
}

const defaultListLimit = 10

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// EnsureSeeded fills an empty catalog with the built-in exercise set.
// A catalog that already has rows is left alone, so repeated startups
// (or a user-extended catalog) never get duplicated or overwritten.
func (r *Repo) EnsureSeeded(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.ensureSeeded")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err = r.db.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM exercise_catalog;`,
	).Scan(&count); err != nil {
		return fmt.Errorf("count catalog exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, ex := range seedCatalog {
		var id int
		err = r.db.QueryRowContext(
			ctx,
			`INSERT INTO exercise_catalog
					(title, description, exercise_type, body_part, equipment, level)
					VALUES (?, ?, ?, ?, ?, ?)
				RETURNING id;`,
			ex.Title, ex.Description, ex.Type, ex.BodyPart, ex.Equipment, ex.Level,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed exercise [%s]: %w", ex.Title, err)
		}

		for step, instruction := range ex.Instructions {
			if _, err = r.db.ExecContext(
				ctx,
				`INSERT INTO exercise_instruction (exercise_id, step_number, instruction)
					VALUES (?, ?, ?);`,
				id, step+1, instruction,
			); err != nil {
				return fmt.Errorf("seed instructions [%s]: %w", ex.Title, err)
			}
		}
	}

	span.SetAttributes(attribute.Int("seeded", len(seedCatalog)))
	return nil
}

// ListByGoal returns catalog exercises whose type serves the given goal.
func (r *Repo) ListByGoal(ctx context.Context, goal string, limit int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listByGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal", goal))

	types, ok := goal2types[strings.ToLower(goal)]
	if !ok {
		types = goal2types["strength"]
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(types)), ",")
	args := make([]any, 0, len(types)+1)
	for _, t := range types {
		args = append(args, t)
	}
	args = append(args, limit)

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, title, description, exercise_type, body_part, equipment, level
			FROM exercise_catalog
			WHERE exercise_type IN (`+placeholders+`)
			ORDER BY id
			LIMIT ?;`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2exercises(ctx, rows)
}

// ListByMuscle returns catalog exercises whose body part matches the given
// muscle, substring and case insensitive.
func (r *Repo) ListByMuscle(ctx context.Context, muscle string, limit int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listByMuscle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle", muscle))

	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, title, description, exercise_type, body_part, equipment, level
			FROM exercise_catalog
			WHERE body_part LIKE ?
			ORDER BY id
			LIMIT ?;`,
		"%"+muscle+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2exercises(ctx, rows)
}

// Titles returns every catalog exercise title, for the dashboard form
// suggestions.
func (r *Repo) Titles(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.titles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.QueryContext(
		ctx, `SELECT title FROM exercise_catalog ORDER BY title;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	titles := make([]string, 0)
	for rows.Next() {
		var title string
		if err = rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *Repo) rows2exercises(ctx context.Context, rows *sql.Rows) ([]Exercise, error) {
	exs := make([]Exercise, 0)
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(
			&ex.ID, &ex.Title, &ex.Description,
			&ex.Type, &ex.BodyPart, &ex.Equipment, &ex.Level,
		); err != nil {
			return nil, err
		}
		exs = append(exs, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachInstructions(ctx, exs); err != nil {
		return nil, fmt.Errorf("attach instructions: %w", err)
	}
	return exs, nil
}

// attachInstructions loads the step-ordered instructions for the given
// exercises. The catalog is small, one scan covers everything.
func (r *Repo) attachInstructions(ctx context.Context, exs []Exercise) error {
	if len(exs) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT exercise_id, instruction
			FROM exercise_instruction
			ORDER BY exercise_id, step_number;`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	instructions := make(map[int][]string)
	for rows.Next() {
		var exerciseID int
		var instruction string
		if err := rows.Scan(&exerciseID, &instruction); err != nil {
			return err
		}
		instructions[exerciseID] = append(instructions[exerciseID], instruction)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range exs {
		exs[i].Instructions = instructions[exs[i].ID]
	}
	return nil
}
