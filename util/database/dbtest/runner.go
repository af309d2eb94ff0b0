package dbtest

import (
	"context"

	"github.com/stefa-ie/buecheria-library-app/util/database"
)

// Runner is a database.Runner for service tests with mocked repositories.
// It hands out nil handles and counts transactions.
type Runner struct {
	Txs int
}

var _ database.Runner = (*Runner)(nil)

func (r *Runner) Reader() database.DBTX { return nil }

func (r *Runner) WithTx(ctx context.Context, fn func(ctx context.Context, tx database.DBTX) error) error {
	r.Txs++
	return fn(ctx, nil)
}
