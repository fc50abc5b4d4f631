package migrations

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_FirstVersionCreatesFavourites(t *testing.T) {
	src, err := iofs.New(MigrationFiles, ".")
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	require.Equal(t, uint(1), version)

	up, _, err := src.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	require.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS favourites")
	require.Contains(t, string(body), "PRIMARY KEY (user_id, product_id, like_date)")

	down, _, err := src.ReadDown(version)
	require.NoError(t, err)
	defer down.Close()
	body, err = io.ReadAll(down)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "DROP TABLE IF EXISTS favourites"))
}

func TestMigrationFiles_AreReentrant(t *testing.T) {
	names, err := fs.Glob(MigrationFiles, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		body, err := fs.ReadFile(MigrationFiles, name)
		require.NoError(t, err)

		if strings.HasSuffix(name, ".up.sql") {
			down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
			_, err := fs.Stat(MigrationFiles, down)
			require.NoError(t, err, "missing %s", down)
		}

		for _, stmt := range strings.Split(string(body), ";") {
			stmt = strings.TrimSpace(stmt)
			switch {
			case strings.HasPrefix(stmt, "CREATE "):
				require.Contains(t, stmt, "IF NOT EXISTS", name)
			case strings.HasPrefix(stmt, "DROP "):
				require.Contains(t, stmt, "IF EXISTS", name)
			}
		}
	}
}
