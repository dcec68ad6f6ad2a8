package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repo, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewInfra(db), mock, func() { db.Close() }
}

func TestEnsureSchemaCreatesTable(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS authorized_users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReturnsStoredID(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	phone := "+100"

	mock.ExpectQuery("INSERT INTO authorized_users").
		WithArgs(int64(123), "alice", "A", "B", "+100").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(123)))

	id, err := repo.Add(context.Background(), &AuthorizedUser{
		UserID:      123,
		Username:    "alice",
		FirstName:   "A",
		LastName:    "B",
		PhoneNumber: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(123), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddDuplicateFails(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery("INSERT INTO authorized_users").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	_, err := repo.Add(context.Background(), &AuthorizedUser{UserID: 123, Username: "alice"})
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery("SELECT user_id FROM authorized_users").
		WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(123)))

	found, id, err := repo.Exists(context.Background(), 123)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(123), id)
}

func TestExistsNotFound(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery("SELECT user_id FROM authorized_users").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	found, id, err := repo.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, id)
}

func TestFindByPhone(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery("SELECT user_id, phone_number FROM authorized_users").
		WithArgs("+100").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "phone_number"}).
			AddRow(int64(123), "+100"))

	found, id, phone, err := repo.FindByPhone(context.Background(), "+100")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(123), id)
	assert.Equal(t, "+100", phone)
}

func TestListAllProjectsNullPhone(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery("SELECT username, phone_number FROM authorized_users").
		WillReturnRows(sqlmock.NewRows([]string{"username", "phone_number"}).
			AddRow("alice", "+100").
			AddRow("bob", nil))

	users, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NotNil(t, users[0].PhoneNumber)
	assert.Equal(t, "+100", *users[0].PhoneNumber)
	assert.Nil(t, users[1].PhoneNumber)
}

func TestUpdatePhone(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectExec("UPDATE authorized_users SET phone_number").
		WithArgs("+200", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePhone(context.Background(), 123, "+200"))
	require.NoError(t, mock.ExpectationsWereMet())
}
