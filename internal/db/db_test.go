package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTestingAppliesSchema(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	for _, table := range []string{"users", "accounts", "profiles", "places", "areas", "containers", "items"} {
		var count int
		err := d.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "expected table %s to exist", table)
	}
}

func TestOpenForTestingIsolation(t *testing.T) {
	d1, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d1.Close() })

	d2, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d2.Close() })

	_, err = d1.Exec("INSERT INTO users (username, email, password_hash) VALUES ('iso', 'iso@example.com', x'00')")
	require.NoError(t, err)

	var count int
	require.NoError(t, d2.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Zero(t, count)
}
