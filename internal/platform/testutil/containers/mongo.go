//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"

	"hrms-backend/internal/platform/config"
	"hrms-backend/internal/platform/mongodb"
)

// MongoContainer wraps a standalone mongod (no transactions) with indexes created.
type MongoContainer struct {
	Container testcontainers.Container
	Store     *mongodb.Store
}

func NewMongoContainer(t *testing.T) *MongoContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get mongo connection string: %v", err)
	}

	st, err := mongodb.Connect(ctx, config.MongoConfig{URI: uri, Database: "hrms"})
	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if err := mongodb.EnsureIndexes(ctx, st.DB); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}
	return &MongoContainer{Container: container, Store: st}
}

func (m *MongoContainer) Truncate(ctx context.Context) error {
	for _, name := range []string{mongodb.CollectionAttendance, mongodb.CollectionEmployees} {
		if _, err := m.Store.DB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}
