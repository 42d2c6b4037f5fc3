//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"hrms-backend/internal/platform/config"
	"hrms-backend/internal/platform/db"
)

// MySQLContainer wraps a testcontainers MySQL instance with the schema applied.
type MySQLContainer struct {
	Container testcontainers.Container
	Config    config.MySQLConfig
	DB        *sql.DB
}

func NewMySQLContainer(t *testing.T) *MySQLContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcmysql.Run(ctx, "mysql:8.0",
		tcmysql.WithDatabase("hrms"),
		tcmysql.WithUsername("hrms"),
		tcmysql.WithPassword("hrms"),
	)
	if err != nil {
		t.Fatalf("failed to start mysql container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get mysql host: %v", err)
	}
	port, err := container.MappedPort(ctx, "3306/tcp")
	if err != nil {
		t.Fatalf("failed to get mysql port: %v", err)
	}

	cfg := config.MySQLConfig{Host: host, Port: port.Int(), Username: "hrms", Password: "hrms", DBName: "hrms"}
	conn, err := db.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to connect to mysql: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.EnsureSchema(ctx, conn); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	return &MySQLContainer{Container: container, Config: cfg, DB: conn}
}

// Truncate empties both tables. Use between tests to ensure isolation.
func (m *MySQLContainer) Truncate(ctx context.Context) error {
	if _, err := m.DB.ExecContext(ctx, `DELETE FROM attendance`); err != nil {
		return err
	}
	_, err := m.DB.ExecContext(ctx, `DELETE FROM employees`)
	return err
}
