package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/bez-dna/bzd-messages/internal/config"
)

type key string

const keyTx = key("sqlx_tx")

type Repository struct {
	connection *sqlx.DB
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// WithTx joins the transaction already present in ctx instead of opening a nested one.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %v", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = t.Rollback()
			panic(p)
		}
	}()

	if err = cb(context.WithValue(ctx, keyTx, t)); err != nil {
		if rbErr := t.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err = t.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %v", err)
	}

	return nil
}

// Chk picks the transaction bound to ctx, falling back to the pool.
func (r *Repository) Chk(ctx context.Context) querier {
	if t, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return t
	}

	return r.connection
}
