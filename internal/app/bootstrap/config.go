// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for AdventureHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, users_collection, etc.
//   - Environment variables: ADVENTUREHUB_MONGO_URI, etc.
//   - Command-line flags: --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "adventure_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},
	{Name: "users_collection", Default: "users", Desc: "Collection holding user documents"},
	{Name: "adventures_collection", Default: "adventures", Desc: "Collection holding adventure documents"},
	{Name: "base_url", Default: "http://localhost:4000", Desc: "Externally visible base URL"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ADVENTUREHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		UsersCollection:      appValues.String("users_collection"),
		AdventuresCollection: appValues.String("adventures_collection"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// A missing connection string, database name, or collection name is a
// fatal startup condition: the process cannot do anything useful
// without the store, so it fails here, once, before connecting.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must be set")
	}
	if appCfg.UsersCollection == "" {
		return fmt.Errorf("users_collection must be set")
	}
	if appCfg.AdventuresCollection == "" {
		return fmt.Errorf("adventures_collection must be set")
	}
	if appCfg.UsersCollection == appCfg.AdventuresCollection {
		return fmt.Errorf("users_collection and adventures_collection must differ")
	}
	return nil
}
