package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout *Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", workout.ExerciseID))

	added := *workout
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workouts (exercise_id, kilos, reps, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;`,
		workout.ExerciseID, workout.Kilos, workout.Reps, workout.UserID,
	).Scan(&added.ID, &added.CreatedAt)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", added.ID))

	return &added, nil
}

// List returns all workouts of the account, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.listWhere(
		ctx,
		`SELECT id, exercise_id, kilos, reps, user_id, created_at
			FROM workouts
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC;`,
		userID,
	)
}

// ListForExercise returns the workouts of one exercise, newest first.
func (r *Repo) ListForExercise(ctx context.Context, exerciseID, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listForExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	return r.listWhere(
		ctx,
		`SELECT id, exercise_id, kilos, reps, user_id, created_at
			FROM workouts
			WHERE exercise_id = $1 AND user_id = $2
			ORDER BY created_at DESC, id DESC;`,
		exerciseID, userID,
	)
}

func (r *Repo) listWhere(ctx context.Context, query string, args ...any) ([]Workout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.ExerciseID, &w.Kilos, &w.Reps, &w.UserID, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	return workouts, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	workout := &Workout{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, exercise_id, kilos, reps, user_id, created_at
			FROM workouts
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&workout.ID, &workout.ExerciseID, &workout.Kilos, &workout.Reps, &workout.UserID, &workout.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// Update changes kilos and reps, the exercise and timestamp stay as is.
func (r *Repo) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workouts SET kilos = $1, reps = $2 WHERE id = $3 AND user_id = $4;`,
		workout.Kilos, workout.Reps, workout.ID, workout.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
