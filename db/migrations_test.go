package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrationsUpDown checks that the schema can be applied and reverted,
// and that the genesis block is seeded by the initial migration.
func TestMigrationsUpDown(t *testing.T) {
	pass := os.Getenv("POSTGRES_PASS")
	db, err := ConnectSQLDB(5432, "localhost", "converter", pass, "converter")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	// start from a clean DB
	require.NoError(t, MigrationsDown(db.DB, 0))
	require.NoError(t, MigrationsUp(db.DB))

	// the initial migration seeds the genesis block
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM block"))
	assert.Equal(t, 1, n)

	// revert: the schema is gone
	require.NoError(t, MigrationsDown(db.DB, 1))
	err = db.Get(&n, "SELECT COUNT(*) FROM block")
	require.Error(t, err)

	// leave the DB migrated for the rest of the tests
	require.NoError(t, MigrationsUp(db.DB))
}
