package employees

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/platform/db"
	"hrms-backend/internal/platform/storeerr"
)

type fixedID string

func (f fixedID) New() (string, error) { return string(f), nil }

func newMockStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewMySQLStore(conn, fixedID("01HZXEMP"), time.Second), mock
}

var employeeCols = []string{"id", "employee_id", "full_name", "email", "department", "created_at"}

func TestMySQLInsert(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("01HZXEMP", "E1", "Jane Doe", "jane@x.com", "Eng", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := &Employee{EmployeeID: "E1", FullName: "Jane Doe", Email: "jane@x.com", Department: "Eng"}
	require.NoError(t, s.Insert(context.Background(), e))
	assert.Equal(t, "01HZXEMP", e.ID)
	assert.False(t, e.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLInsertDuplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'E1' for key 'employees." + db.IndexEmployeeID + "'"})

	err := s.Insert(context.Background(), &Employee{EmployeeID: "E1"})
	var dup *storeerr.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "employee_id", dup.Key)
}

func TestMySQLFindByEmployeeID(t *testing.T) {
	s, mock := newMockStore(t)
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE employee_id = ?")).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows(employeeCols).AddRow("01", "E1", "Jane Doe", "jane@x.com", "Eng", created))
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE employee_id = ?")).
		WithArgs("E2").
		WillReturnRows(sqlmock.NewRows(employeeCols))

	e, err := s.FindByEmployeeID(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "01", e.ID)
	assert.Equal(t, created, e.CreatedAt)

	_, err = s.FindByEmployeeID(context.Background(), "E2")
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
}

func TestMySQLExists(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM employees WHERE employee_id = ?")).
		WithArgs("E1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM employees WHERE email = ?")).
		WithArgs("nobody@x.com").WillReturnRows(sqlmock.NewRows([]string{"1"}))

	ok, err := s.ExistsEmployeeID(context.Background(), "E1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ExistsEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMySQLListNewestFirst(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows(employeeCols).
			AddRow("02", "E2", "B", "b@x.com", "Ops", now).
			AddRow("01", "E1", "A", "a@x.com", "Eng", now.Add(-time.Hour)))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "E2", list[0].EmployeeID)
	assert.Equal(t, "E1", list[1].EmployeeID)
}

func TestMySQLCount(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees")).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(5))

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestMySQLDeleteWithAttendance(t *testing.T) {
	t.Run("children then parent in one transaction", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attendance WHERE employee_ref = ?")).
			WithArgs("01").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = ?")).
			WithArgs("01").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.DeleteWithAttendance(context.Background(), "01"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing parent rolls back", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attendance")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := s.DeleteWithAttendance(context.Background(), "01")
		assert.ErrorIs(t, err, storeerr.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure in child delete rolls back", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attendance")).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := s.DeleteWithAttendance(context.Background(), "01")
		assert.ErrorIs(t, err, assert.AnError)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
