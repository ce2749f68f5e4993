package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("exercise already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add creates a new exercise for the given account. The (name, user_id)
// uniqueness is enforced by the DB constraint, not pre-checked, so two
// racing inserts can never both succeed.
func (r *Repo) Add(ctx context.Context, userID int, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.name", name))

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercises (name, user_id) VALUES ($1, $2) RETURNING id;`,
		name, userID,
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateExercise
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	return &Exercise{
		ID:     id,
		Name:   name,
		UserID: userID,
	}, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	exercise := &Exercise{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, user_id FROM exercises WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&exercise.ID, &exercise.Name, &exercise.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, user_id FROM exercises WHERE user_id = $1 ORDER BY name;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.UserID); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	return exercises, nil
}

func (r *Repo) Update(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercises SET name = $1 WHERE id = $2 AND user_id = $3;`,
		exercise.Name, exercise.ID, exercise.UserID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDuplicateExercise
		}
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

// Delete removes the exercise together with all workouts referencing it.
// Workouts go first, in the same transaction, to satisfy the FK.
func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`DELETE FROM workouts WHERE exercise_id = $1 AND user_id = $2;`,
		id, userID,
	); err != nil {
		return err
	}

	tag, err := tx.Exec(
		ctx,
		`DELETE FROM exercises WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrExerciseNotFound
		return err
	}

	return nil
}
