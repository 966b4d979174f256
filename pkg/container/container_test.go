package container

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/config"
	authorModel "blog-backend/internal/domains/author/model"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "test", Environment: "development"},
		Storage: config.StorageConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "blog.db"),
		},
	}
}

func TestContainer_TwoPhaseSetup(t *testing.T) {
	ctx := context.Background()

	c, err := NewContainer(ctx, sqliteConfig(t))
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	err = c.InitServices(ctx)
	assert.ErrorIs(t, err, authorModel.ErrSchemaNotReady)
	assert.Nil(t, c.AuthorService)

	require.NoError(t, c.Migrate(ctx))
	require.NoError(t, c.InitServices(ctx))
	assert.NotNil(t, c.AuthorService)
	assert.NotNil(t, c.PostService)
}

func TestNewContainer_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Storage.Driver = "mysql"

	_, err := NewContainer(context.Background(), cfg)
	assert.Error(t, err)
}
