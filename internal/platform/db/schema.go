package db

import (
	"context"
	"fmt"
)

// Index names are matched by Translate to report which key was violated.
const (
	IndexEmployeeID     = "uq_employees_employee_id"
	IndexEmployeeEmail  = "uq_employees_email"
	IndexAttendanceDate = "uq_attendance_employee_date"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
	id          CHAR(26)     NOT NULL,
	employee_id VARCHAR(64)  NOT NULL,
	full_name   VARCHAR(255) NOT NULL,
	email       VARCHAR(255) NOT NULL,
	department  VARCHAR(255) NOT NULL,
	created_at  DATETIME(6)  NOT NULL,
	PRIMARY KEY (id),
	UNIQUE KEY ` + IndexEmployeeID + ` (employee_id),
	UNIQUE KEY ` + IndexEmployeeEmail + ` (email),
	KEY idx_employees_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS attendance (
	id           CHAR(26)                  NOT NULL,
	employee_ref CHAR(26)                  NOT NULL,
	attended_on  DATE                      NOT NULL,
	status       ENUM('Present','Absent')  NOT NULL,
	created_at   DATETIME(6)               NOT NULL,
	updated_at   DATETIME(6)               NOT NULL,
	PRIMARY KEY (id),
	UNIQUE KEY ` + IndexAttendanceDate + ` (employee_ref, attended_on),
	KEY idx_attendance_on (attended_on, status),
	CONSTRAINT fk_attendance_employee FOREIGN KEY (employee_ref)
		REFERENCES employees (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables and unique keys if they do not exist.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
