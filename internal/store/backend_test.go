package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_RoundTrip(t *testing.T) {
	b := NewMemoryBackend()

	data, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, b.Save(context.Background(), []byte(`{"users":[]}`)))
	data, err = b.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"users":[]}`), data)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surveyforge.db.json")
	b := NewFileBackend(path)

	// A missing file reads as absent, not as an error.
	data, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, b.Save(context.Background(), []byte(`{"surveys":[]}`)))
	data, err = b.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"surveys":[]}`), data)

	// The write is a whole-file replacement.
	require.NoError(t, b.Save(context.Background(), []byte(`{}`)))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), raw)
}

func TestSQLBackend_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	backend, err := NewSQLBackendWithDB(sqlx.NewDb(db, "sqlmock"))
	require.NoError(t, err)

	mock.ExpectQuery("SELECT data FROM documents").
		WithArgs(DocumentKey).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"users":[]}`)))

	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"users":[]}`), data)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackend_LoadAbsentRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	backend, err := NewSQLBackendWithDB(sqlx.NewDb(db, "sqlmock"))
	require.NoError(t, err)

	mock.ExpectQuery("SELECT data FROM documents").
		WithArgs(DocumentKey).
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackend_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	backend, err := NewSQLBackendWithDB(sqlx.NewDb(db, "sqlmock"))
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(DocumentKey, []byte(`{"responses":[]}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, backend.Save(context.Background(), []byte(`{"responses":[]}`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisBackend_RoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	backend := NewRedisBackend(client)

	mock.ExpectGet(DocumentKey).RedisNil()
	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)

	mock.ExpectSet(DocumentKey, []byte(`{"users":[]}`), 0).SetVal("OK")
	require.NoError(t, backend.Save(context.Background(), []byte(`{"users":[]}`)))

	mock.ExpectGet(DocumentKey).SetVal(`{"users":[]}`)
	data, err = backend.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"users":[]}`), data)

	require.NoError(t, mock.ExpectationsWereMet())
}
