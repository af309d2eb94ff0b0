// Package dbtest opens migrated in-memory SQLite stores for tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stefa-ie/buecheria-library-app/util/database"
)

var seq atomic.Int64

// New returns a fresh, migrated store that is closed when t ends.
func New(t testing.TB) *database.DB {
	t.Helper()
	ctx := context.Background()
	dsn := fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", seq.Add(1))
	db, err := database.New(ctx, database.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db
}
