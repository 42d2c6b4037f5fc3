package employees

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/db"
	"hrms-backend/internal/platform/storeerr"
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

// mysqlKey は UNIQUE インデックス名 → リクエストのフィールド名
func mysqlKey(msg string) string {
	switch {
	case strings.Contains(msg, db.IndexEmployeeID):
		return "employee_id"
	case strings.Contains(msg, db.IndexEmployeeEmail):
		return "email"
	}
	return ""
}

func (s *MySQLStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MySQLStore) Insert(ctx context.Context, e *Employee) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.ids.New()
	if err != nil {
		return err
	}
	now := s.clock.Now().UTC()

	const q = `
	INSERT INTO employees (id, employee_id, full_name, email, department, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, id, e.EmployeeID, e.FullName, e.Email, e.Department, now); err != nil {
		return db.Translate(err, mysqlKey)
	}
	e.ID = id
	e.CreatedAt = now
	return nil
}

func (s *MySQLStore) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	const q = `
	SELECT id, employee_id, full_name, email, department, created_at
	FROM employees WHERE employee_id = ?`
	var e Employee
	err := s.db.QueryRowContext(ctx, q, employeeID).Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt)
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	return &e, nil
}

func (s *MySQLStore) ExistsEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return s.exists(ctx, `SELECT 1 FROM employees WHERE employee_id = ? LIMIT 1`, employeeID)
}

func (s *MySQLStore) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT 1 FROM employees WHERE email = ? LIMIT 1`, email)
}

func (s *MySQLStore) exists(ctx context.Context, q string, arg any) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var one int
	err := s.db.QueryRowContext(ctx, q, arg).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, db.Translate(err, nil)
	}
	return true, nil
}

func (s *MySQLStore) List(ctx context.Context) ([]Employee, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
	SELECT id, employee_id, full_name, email, department, created_at
	FROM employees
	ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	defer rows.Close()

	out := make([]Employee, 0, 16)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt); err != nil {
			return nil, db.Translate(err, nil)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Translate(err, nil)
	}
	return out, nil
}

func (s *MySQLStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, db.Translate(err, nil)
	}
	return n, nil
}

// DeleteWithAttendance は子（attendance）→ 親（employees）の順に1トランザクションで削除する。
// FK の ON DELETE CASCADE は保険。
func (s *MySQLStore) DeleteWithAttendance(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM attendance WHERE employee_ref = ?`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
		if err != nil {
			return err
		}
		aff, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if aff == 0 {
			return storeerr.ErrNotFound
		}
		return nil
	})
	return db.Translate(err, nil)
}
