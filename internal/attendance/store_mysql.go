package attendance

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/db"
)

type MySQLStore struct {
	db      *sql.DB
	ids     clock.IDGen
	clock   clock.Clock
	timeout time.Duration
}

func NewMySQLStore(conn *sql.DB, ids clock.IDGen, timeout time.Duration) *MySQLStore {
	return &MySQLStore{db: conn, ids: ids, clock: clock.New(time.UTC), timeout: timeout}
}

func mysqlKey(msg string) string {
	if strings.Contains(msg, db.IndexAttendanceDate) {
		return "date"
	}
	return ""
}

func (s *MySQLStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

const selectRecord = `
	SELECT id, employee_ref, attended_on, status, created_at, updated_at
	FROM attendance`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		r      Record
		status string
	)
	if err := row.Scan(&r.ID, &r.EmployeeRef, &r.Date, &status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return Record{}, err
	}
	r.Status = Status(status)
	r.Date = r.Date.UTC()
	return r, nil
}

func (s *MySQLStore) Find(ctx context.Context, employeeRef string, day time.Time) (*Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.find(ctx, s.db, employeeRef, day)
}

func (s *MySQLStore) find(ctx context.Context, q db.DBTX, employeeRef string, day time.Time) (*Record, error) {
	row := q.QueryRowContext(ctx, selectRecord+` WHERE employee_ref = ? AND attended_on = ?`,
		employeeRef, day.Format(clock.DateLayout))
	r, err := scanRecord(row)
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	return &r, nil
}

func (s *MySQLStore) Insert(ctx context.Context, r *Record) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.ids.New()
	if err != nil {
		return err
	}
	now := s.clock.Now().UTC()

	const q = `
	INSERT INTO attendance (id, employee_ref, attended_on, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, id, r.EmployeeRef, r.Date.Format(clock.DateLayout), string(r.Status), now, now); err != nil {
		// 1062 → ErrDuplicate, 1452 (FK) → ErrNotFound
		return db.Translate(err, mysqlKey)
	}
	r.ID = id
	r.CreatedAt = now
	r.UpdatedAt = now
	return nil
}

func (s *MySQLStore) UpdateStatus(ctx context.Context, employeeRef string, day time.Time, status Status) (*Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *Record
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		const q = `UPDATE attendance SET status = ?, updated_at = ? WHERE employee_ref = ? AND attended_on = ?`
		if _, err := tx.ExecContext(ctx, q, string(status), s.clock.Now().UTC(), employeeRef, day.Format(clock.DateLayout)); err != nil {
			return err
		}
		// RowsAffected は値が変わらないと 0 になるので読み直して存在を確認する
		r, err := s.find(ctx, tx, employeeRef, day)
		if err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	return out, nil
}

func (s *MySQLStore) ListByEmployee(ctx context.Context, employeeRef string) ([]Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, selectRecord+`
	WHERE employee_ref = ?
	ORDER BY attended_on DESC`, employeeRef)
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	defer rows.Close()

	out := make([]Record, 0, 32)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, db.Translate(err, nil)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Translate(err, nil)
	}
	return out, nil
}

// TallyByEmployee counts Present/Absent per employee ref in one query.
func (s *MySQLStore) TallyByEmployee(ctx context.Context) (map[string]employees.Tally, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
	SELECT employee_ref, status, COUNT(*)
	FROM attendance
	GROUP BY employee_ref, status`)
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	defer rows.Close()

	out := make(map[string]employees.Tally)
	for rows.Next() {
		var (
			ref, status string
			n           int64
		)
		if err := rows.Scan(&ref, &status, &n); err != nil {
			return nil, db.Translate(err, nil)
		}
		out[ref] = addTally(out[ref], Status(status), n)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Translate(err, nil)
	}
	return out, nil
}

// CountOn counts records on day. An empty status counts every record.
func (s *MySQLStore) CountOn(ctx context.Context, day time.Time, status string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q := `SELECT COUNT(*) FROM attendance WHERE attended_on = ?`
	args := []any{day.Format(clock.DateLayout)}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	var n int64
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, db.Translate(err, nil)
	}
	return n, nil
}

func addTally(t employees.Tally, status Status, n int64) employees.Tally {
	switch status {
	case StatusPresent:
		t.Present += n
	case StatusAbsent:
		t.Absent += n
	}
	return t
}
