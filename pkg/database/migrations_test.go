package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/coolleighton/InventoryApp/pkg/logger"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
)

const mongoPort = nat.Port("27017/tcp")

// startMongo runs a throwaway MongoDB container. Set INVENTORY_INTEGRATION=1 to enable.
func startMongo(t *testing.T) *MongoDB {
	t.Helper()
	if os.Getenv("INVENTORY_INTEGRATION") != "1" {
		t.Skip("set INVENTORY_INTEGRATION=1 to run MongoDB integration tests")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{string(mongoPort)},
			WaitingFor:   wait.ForListeningPort(mongoPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, mongoPort)
	require.NoError(t, err)

	db, err := NewMongoDB(&DatabaseConfig{
		URI:            fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Database:       "inventory_migrations_test",
		MaxPoolSize:    5,
		MinPoolSize:    1,
		ConnectTimeout: 10 * time.Second,
		SocketTimeout:  10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func indexNames(t *testing.T, db *MongoDB, collection string) []string {
	t.Helper()
	cursor, err := db.Collection(collection).Indexes().List(context.Background())
	require.NoError(t, err)

	var specs []bson.M
	require.NoError(t, cursor.All(context.Background(), &specs))

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec["name"].(string))
	}
	return names
}

func TestMigratorUpAndDown(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()
	migrator := NewMigrator(db.Database, logger.NewNop())

	require.NoError(t, migrator.Up(ctx))
	for _, collection := range []string{"economycars", "luxurycars"} {
		assert.Subset(t, indexNames(t, db, collection), []string{"model_1", "price_1"}, collection)
	}

	version, err := migrator.getCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	// a second run is a no-op
	require.NoError(t, migrator.Up(ctx))

	require.NoError(t, migrator.Down(ctx, 1))
	assert.NotContains(t, indexNames(t, db, "luxurycars"), "price_1")
	assert.Contains(t, indexNames(t, db, "economycars"), "price_1")

	version, err = migrator.getCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}
