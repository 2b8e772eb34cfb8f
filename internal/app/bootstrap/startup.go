// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/seeds"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// A broken seed file should fail the deploy, not the first purchase,
// so the catalog is verified here.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := seeds.Verify(); err != nil {
		logger.Error("seed catalog verification failed", zap.Error(err))
		return err
	}
	logger.Info("seed catalog verified")
	return nil
}
