package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// TxExecute runs cb inside the transaction scope attached to ctx by one of the middlewares.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.DbRepo == nil {
		return fmt.Errorf("failed to get tx from context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}

func WithTxContext(ctx context.Context, dbRepo DbRepo) context.Context {
	return context.WithValue(ctx, KeyTx, Tx{DbRepo: dbRepo})
}

func TxMiddlewareHTTP(dbRepo DbRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithTxContext(r.Context(), dbRepo)))
		})
	}
}
