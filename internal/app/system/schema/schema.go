// Package schema installs the $jsonSchema validators for each
// collection so the store rejects malformed documents regardless of
// which code path writes them.
package schema

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/domain/models"
)

/*
EnsureAll is called at startup. Each ensure step is idempotent: collMod
updates the validator on an existing collection, and a missing
collection is created with the validator attached. Problems are
aggregated so every broken collection is visible and startup can fail
fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, usersColl, adventuresColl string, logger *zap.Logger) error {
	var problems []string

	if err := ensureValidator(ctx, db, usersColl, userValidator()); err != nil {
		problems = append(problems, usersColl+": "+err.Error())
	} else {
		logger.Info("collection validator ensured", zap.String("collection", usersColl))
	}

	if err := ensureValidator(ctx, db, adventuresColl, adventureValidator()); err != nil {
		problems = append(problems, adventuresColl+": "+err.Error())
	} else {
		logger.Info("collection validator ensured", zap.String("collection", adventuresColl))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "strict"},
	}).Err()
	if err == nil {
		return nil
	}
	if !isNamespaceNotFound(err) {
		return err
	}

	// First run against a fresh database: create the collection with
	// the validator attached.
	return db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
}

func isNamespaceNotFound(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return ce.Code == 26 || ce.Name == "NamespaceNotFound"
	}
	return strings.Contains(err.Error(), "NamespaceNotFound")
}

func editionEnum() bson.A {
	vals := bson.A{}
	for _, e := range models.Editions() {
		vals = append(vals, string(e))
	}
	return vals
}

func iconEnum() bson.A {
	vals := bson.A{}
	for _, ic := range models.Icons() {
		vals = append(vals, string(ic))
	}
	return vals
}

func userValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":             "object",
			"required":             bson.A{"name", "email", "email_ci"},
			"additionalProperties": false,
			"properties": bson.M{
				"_id": bson.M{},
				"name": bson.M{
					"bsonType": "string",
				},
				"email": bson.M{
					"bsonType": "string",
				},
				"email_ci": bson.M{
					"bsonType": "string",
				},
				"identities": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType":             "object",
						"required":             bson.A{"connection", "isSocial", "provider", "user_id"},
						"additionalProperties": false,
						"properties": bson.M{
							"connection": bson.M{"bsonType": "string"},
							"isSocial":   bson.M{"bsonType": "bool"},
							"provider":   bson.M{"bsonType": "string"},
							"user_id":    bson.M{"bsonType": "int"},
						},
					},
				},
				"editions": bson.M{
					"bsonType": "array",
					"items":    bson.M{"enum": editionEnum()},
				},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func adventureValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{
				"user_id", "name", "edition", "order", "icons", "cost",
				"timeOfDay", "duration", "durationUnits", "completed",
			},
			"additionalProperties": false,
			"properties": bson.M{
				"_id": bson.M{},
				"user_id": bson.M{
					"bsonType": "objectId",
				},
				"name": bson.M{
					"bsonType": "string",
				},
				"edition": bson.M{
					"enum": editionEnum(),
				},
				"order": bson.M{
					"bsonType": "int",
				},
				"icons": bson.M{
					"bsonType":    "array",
					"minItems":    1,
					"uniqueItems": true,
					"items":       bson.M{"enum": iconEnum()},
				},
				"cost": bson.M{
					"bsonType":    "array",
					"minItems":    1,
					"uniqueItems": true,
					"items":       bson.M{"bsonType": "int"},
				},
				"timeOfDay": bson.M{
					"bsonType": "string",
				},
				"duration": bson.M{
					"bsonType":    "array",
					"minItems":    1,
					"uniqueItems": true,
					"items":       bson.M{"bsonType": "int"},
				},
				"durationUnits": bson.M{
					"bsonType": "string",
				},
				"completed": bson.M{
					"bsonType": "bool",
				},
				"photo": bson.M{
					"bsonType": "string",
				},
				"notes": bson.M{
					"bsonType": "string",
				},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}
