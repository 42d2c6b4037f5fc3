package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"hrms-backend/internal/platform/config"
	"hrms-backend/internal/platform/storeerr"
)

const driverName = "mysql"

const (
	// UNIQUE 制約違反 (ER_DUP_ENTRY)
	mysqlErrDupEntry = 1062
	// 参照先の親行が存在しない (ER_NO_REFERENCED_ROW_2)
	mysqlErrNoReferencedRow = 1452
	// ロック競合 (ER_LOCK_WAIT_TIMEOUT, ER_LOCK_DEADLOCK)。再試行で通る
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

func DSN(c config.MySQLConfig) string {
	mc := mysql.NewConfig()
	mc.User = c.Username
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Timeout = 3 * time.Second
	mc.ReadTimeout = 5 * time.Second
	mc.WriteTimeout = 5 * time.Second
	return mc.FormatDSN()
}

func Connect(ctx context.Context, c config.MySQLConfig) (*sql.DB, error) {
	db, err := sql.Open(driverName, DSN(c))
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	// 接続プール（合算がMySQLの max_connections を超えないよう配分する）
	db.SetMaxOpenConns(40)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// Translate maps driver errors to storeerr values. keyFor maps the violated
// MySQL index name to a payload field.
func Translate(err error, keyFor func(index string) string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storeerr.ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlErrDupEntry {
		if keyFor != nil {
			if key := keyFor(me.Message); key != "" {
				return storeerr.Duplicate(key)
			}
		}
		return storeerr.ErrDuplicate
	}
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrNoReferencedRow:
			return storeerr.ErrNotFound
		case mysqlErrDeadlock, mysqlErrLockWaitTimeout:
			return fmt.Errorf("%w: %w", storeerr.ErrUnavailable, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", storeerr.ErrUnavailable, err)
	}
	return err
}
