package body

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("body entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry *Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added := *entry
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO body (height, weight, user_id)
			VALUES ($1, $2, $3)
			RETURNING id, created_at;`,
		entry.Height, entry.Weight, entry.UserID,
	).Scan(&added.ID, &added.CreatedAt)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entry.id", added.ID))

	return &added, nil
}

// List returns all body entries of the account, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, height, weight, user_id, created_at
			FROM body
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Height, &e.Weight, &e.UserID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *Repo) MostRecent(ctx context.Context, userID int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.mostRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry := &Entry{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, height, weight, user_id, created_at
			FROM body
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID,
	).Scan(&entry.ID, &entry.Height, &entry.Weight, &entry.UserID, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	entry := &Entry{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, height, weight, user_id, created_at
			FROM body
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&entry.ID, &entry.Height, &entry.Weight, &entry.UserID, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// Update changes height and weight of an entry, the timestamp stays as is.
func (r *Repo) Update(ctx context.Context, entry *Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", entry.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE body SET height = $1, weight = $2 WHERE id = $3 AND user_id = $4;`,
		entry.Height, entry.Weight, entry.ID, entry.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM body WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
