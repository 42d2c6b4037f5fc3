package attendance

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/db"
	"hrms-backend/internal/platform/storeerr"
)

type fixedID string

func (f fixedID) New() (string, error) { return string(f), nil }

var recordCols = []string{"id", "employee_ref", "attended_on", "status", "created_at", "updated_at"}

var day = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newMockStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewMySQLStore(conn, fixedID("01HZXATT"), time.Second), mock
}

func TestMySQLFind(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_ref = ? AND attended_on = ?")).
		WithArgs("01EMP", "2024-01-01").
		WillReturnRows(sqlmock.NewRows(recordCols).AddRow("01HZXATT", "01EMP", day, "Present", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_ref = ? AND attended_on = ?")).
		WithArgs("01EMP", "2024-01-02").
		WillReturnRows(sqlmock.NewRows(recordCols))

	r, err := s.Find(context.Background(), "01EMP", day)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, r.Status)
	assert.Equal(t, day, r.Date)

	_, err = s.Find(context.Background(), "01EMP", day.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLInsert(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendance")).
		WithArgs("01HZXATT", "01EMP", "2024-01-01", "Absent", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := &Record{EmployeeRef: "01EMP", Date: day, Status: StatusAbsent}
	require.NoError(t, s.Insert(context.Background(), r))
	assert.Equal(t, "01HZXATT", r.ID)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLInsertConflicts(t *testing.T) {
	t.Run("same employee and date", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendance")).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry for key 'attendance." + db.IndexAttendanceDate + "'"})

		err := s.Insert(context.Background(), &Record{EmployeeRef: "01EMP", Date: day, Status: StatusPresent})
		assert.ErrorIs(t, err, storeerr.ErrDuplicate)
		var dup *storeerr.DuplicateKeyError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "date", dup.Key)
	})

	t.Run("employee gone", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendance")).
			WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

		err := s.Insert(context.Background(), &Record{EmployeeRef: "01GONE", Date: day, Status: StatusPresent})
		assert.ErrorIs(t, err, storeerr.ErrNotFound)
	})
}

func TestMySQLUpdateStatus(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE attendance SET status = ?")).
		WithArgs("Absent", sqlmock.AnyArg(), "01EMP", "2024-01-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_ref = ? AND attended_on = ?")).
		WithArgs("01EMP", "2024-01-01").
		WillReturnRows(sqlmock.NewRows(recordCols).AddRow("01HZXATT", "01EMP", day, "Absent", now, now))
	mock.ExpectCommit()

	r, err := s.UpdateStatus(context.Background(), "01EMP", day, StatusAbsent)
	require.NoError(t, err)
	assert.Equal(t, "01HZXATT", r.ID)
	assert.Equal(t, StatusAbsent, r.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUpdateStatusMissing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE attendance SET status = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_ref = ? AND attended_on = ?")).
		WillReturnRows(sqlmock.NewRows(recordCols))
	mock.ExpectRollback()

	_, err := s.UpdateStatus(context.Background(), "01EMP", day, StatusAbsent)
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLListByEmployee(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY attended_on DESC")).
		WithArgs("01EMP").
		WillReturnRows(sqlmock.NewRows(recordCols).
			AddRow("2", "01EMP", day.AddDate(0, 0, 1), "Absent", now, now).
			AddRow("1", "01EMP", day, "Present", now, now))

	list, err := s.ListByEmployee(context.Background(), "01EMP")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, StatusPresent, list[1].Status)
}

func TestMySQLTallyByEmployee(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY employee_ref, status")).
		WillReturnRows(sqlmock.NewRows([]string{"employee_ref", "status", "n"}).
			AddRow("A", "Present", 3).
			AddRow("A", "Absent", 1).
			AddRow("B", "Absent", 2))

	got, err := s.TallyByEmployee(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]employees.Tally{
		"A": {Present: 3, Absent: 1},
		"B": {Absent: 2},
	}, got)
}

func TestMySQLCountOn(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM attendance WHERE attended_on = ? AND status = ?")).
		WithArgs("2024-01-01", "Present").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM attendance WHERE attended_on = ?")).
		WithArgs("2024-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(6))

	n, err := s.CountOn(context.Background(), day, string(StatusPresent))
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)

	n, err = s.CountOn(context.Background(), day, "")
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
