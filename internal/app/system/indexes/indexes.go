// Package indexes ensures the indexes each collection needs at startup.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. CreateMany is idempotent when the same
name and key pattern already exist; errors are aggregated so any
problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, usersColl, adventuresColl string, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db.Collection(usersColl)); err != nil {
		problems = append(problems, usersColl+": "+err.Error())
	}
	if err := ensureAdventures(ctx, db.Collection(adventuresColl)); err != nil {
		problems = append(problems, adventuresColl+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}

	logger.Info("indexes ensured",
		zap.String("users", usersColl),
		zap.String("adventures", adventuresColl))
	return nil
}

// ensureUsers backs the upsert-by-email key: email_ci must be unique so
// two concurrent creates cannot race past each other.
func ensureUsers(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email_ci", Value: 1}},
			Options: options.Index().SetName("uniq_email_ci").SetUnique(true),
		},
	})
	return err
}

// ensureAdventures supports list-by-owner reads in edition/template
// order.
func ensureAdventures(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "edition", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().SetName("user_edition_order"),
		},
	})
	return err
}
