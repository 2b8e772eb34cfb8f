// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	adventuresfeature "github.com/dalemusser/adventurehub/internal/app/features/adventures"
	healthfeature "github.com/dalemusser/adventurehub/internal/app/features/health"
	usersfeature "github.com/dalemusser/adventurehub/internal/app/features/users"
	"github.com/dalemusser/adventurehub/internal/app/metrics"
	"github.com/dalemusser/adventurehub/internal/app/provision"
	adventurestore "github.com/dalemusser/adventurehub/internal/app/store/adventures"
	userstore "github.com/dalemusser/adventurehub/internal/app/store/users"
	"github.com/dalemusser/adventurehub/internal/app/system/httpmw"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. It creates the stores and the
// provisioning service, applies the shared middleware chain, and
// mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	users := userstore.New(deps.MongoDatabase, appCfg.UsersCollection)
	adventures := adventurestore.New(deps.MongoDatabase, appCfg.AdventuresCollection)
	provisioner := provision.New(deps.MongoClient, users, adventures, collector, logger)

	r := chi.NewRouter()

	r.Use(httpmw.RequestID)
	r.Use(httpmw.Recoverer(logger))
	r.Use(httpmw.Logger(logger))
	r.Use(httpmw.Metrics(collector))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler(reg))

	usersHandler := usersfeature.NewHandler(users, adventures, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	adventuresHandler := adventuresfeature.NewHandler(adventures, provisioner, logger)
	r.Mount("/adventures", adventuresfeature.Routes(adventuresHandler))

	return r, nil
}
