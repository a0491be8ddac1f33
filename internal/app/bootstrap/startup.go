// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// Reading the credential store here surfaces a broken backend at boot
// instead of on the first login attempt, and seeds the default admin
// login the first time the app runs.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	creds, err := deps.Credentials.Get(ctx)
	if err != nil {
		logger.Error("credential store unreachable at startup", zap.Error(err))
		return err
	}
	logger.Info("admin credentials loaded", zap.String("username", creds.Username))
	return nil
}
