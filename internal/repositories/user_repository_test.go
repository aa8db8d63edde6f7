package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-api/internal/models"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	d, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every new connection to :memory: would see an empty database
	d.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`CREATE TABLE users4 (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL
	)`)
	require.NoError(t, err)
	return d
}

func TestListUsersEmpty(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsersReturnsAllRows(t *testing.T) {
	d := openTestDB(t)
	d.MustExec(`INSERT INTO users4 (id, username, email) VALUES (1, 'alice', 'a@x.com'), (2, 'bob', 'b@x.com')`)
	repo := NewUserRepository(d)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.User{
		{ID: 1, Username: "alice", Email: "a@x.com"},
		{ID: 2, Username: "bob", Email: "b@x.com"},
	}, users)
}

func TestListUsersMissingTable(t *testing.T) {
	d, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	_, err = NewUserRepository(d).ListUsers(context.Background())
	require.Error(t, err)
}

func TestListUsersClosedDatabase(t *testing.T) {
	d := openTestDB(t)
	require.NoError(t, d.Close())

	users, err := NewUserRepository(d).ListUsers(context.Background())
	require.Error(t, err)
	assert.Nil(t, users)
}

func TestListUsersCancelledContext(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListUsers(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
