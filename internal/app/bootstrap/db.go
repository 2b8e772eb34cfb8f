// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/system/indexes"
	"github.com/dalemusser/adventurehub/internal/app/system/schema"
)

// EnsureSchema installs the collection validators and indexes. Both
// steps are idempotent, so restarts are safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := schema.EnsureAll(ctx, deps.MongoDatabase, appCfg.UsersCollection, appCfg.AdventuresCollection, logger); err != nil {
		return err
	}
	return indexes.EnsureAll(ctx, deps.MongoDatabase, appCfg.UsersCollection, appCfg.AdventuresCollection, logger)
}
