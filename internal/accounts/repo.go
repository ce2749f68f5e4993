package accounts

import (
	"context"
	"errors"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrAccountNotFound = errors.New("account not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, username, passwordHash string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO accounts (username, password_hash) VALUES ($1, $2) RETURNING id;`,
		username, passwordHash,
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("account.id", id))

	return &Account{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
	}, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	account := &Account{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash FROM accounts WHERE username = $1;`,
		username,
	).Scan(&account.ID, &account.Username, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (r *Repo) GetByID(ctx context.Context, id int) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	account := &Account{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash FROM accounts WHERE id = $1;`,
		id,
	).Scan(&account.ID, &account.Username, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (r *Repo) UpdatePassword(ctx context.Context, id int, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.updatePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE accounts SET password_hash = $1 WHERE id = $2;`,
		passwordHash, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}
