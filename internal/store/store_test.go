package store_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/mmarinn/dayder/internal/store"
)

// openTestDB opens a private in-memory database per test and creates the
// schema. The single-connection pool keeps the memory database alive for
// the duration of the test.
func openTestDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := store.Open(dsn)
	require.NoError(t, err)

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.CreateSchema(context.Background(), db))
	return db
}
