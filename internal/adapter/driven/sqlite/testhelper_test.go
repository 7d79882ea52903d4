package sqlite

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB creates a named shared in-memory SQLite database, migrated and
// ready for use. cache=shared lets the writer and reader pools see the same
// data; the name comes from t.Name() so parallel tests stay isolated.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Percent-encode the test name so subtests with "/" in their names don't
	// break the file: URI.
	name := url.PathEscape(t.Name())
	// In-memory databases have no journal file, so the WAL pragma is omitted.
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		name,
	)

	writer, err := openPool(dsn, 1)
	require.NoError(t, err, "open test writer pool")

	reader, err := openPool(dsn, 4)
	if err != nil {
		_ = writer.Close()
		t.Fatalf("open test reader pool: %v", err)
	}

	db := &DB{Writer: writer, Reader: reader, path: dsn}
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db.Writer), "migrate test db")

	return db
}
