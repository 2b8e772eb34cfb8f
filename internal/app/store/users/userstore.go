package userstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dalemusser/adventurehub/internal/app/system/normalize"
	"github.com/dalemusser/adventurehub/internal/app/system/sanitize"
	"github.com/dalemusser/adventurehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments when
// no user matches.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(normalize.Email(email))}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertByEmail replaces the document whose email matches u.Email, or
// inserts a new one. The folded email is the match key, so address
// casing never produces a second account. Returns the stored document
// and whether it was created rather than updated.
func (s *Store) UpsertByEmail(ctx context.Context, u models.User) (*models.User, bool, error) {
	u = normalizeUser(u)
	now := time.Now().UTC()

	filter := bson.M{"email_ci": u.EmailCI}
	update := bson.M{
		"$set":         setFields(u, now),
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "created_at": now},
	}

	opts := options.Update().SetUpsert(true)
	res, err := s.c.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, false, err
	}
	created := res.UpsertedCount > 0

	stored, err := s.GetByEmail(ctx, u.Email)
	if err != nil {
		return nil, created, err
	}
	return stored, created, nil
}

// Replace overwrites the payload fields of the user with the given ID.
// Returns mongo.ErrNoDocuments when no user has that ID.
func (s *Store) Replace(ctx context.Context, id primitive.ObjectID, u models.User) (*models.User, error) {
	u = normalizeUser(u)
	now := time.Now().UTC()

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": setFields(u, now)})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.GetByID(ctx, id)
}

// Delete removes a user by ID. Returns mongo.ErrNoDocuments when
// nothing matched.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddEditions unions the given editions into the user's owned set.
// Used by provisioning after a successful batch insert.
func (s *Store) AddEditions(ctx context.Context, id primitive.ObjectID, editions []models.Edition) error {
	vals := make(bson.A, 0, len(editions))
	for _, e := range editions {
		vals = append(vals, e)
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{"editions": bson.M{"$each": vals}},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func normalizeUser(u models.User) models.User {
	u.Name = sanitize.Text(normalize.Name(u.Name))
	u.Email = normalize.Email(u.Email)
	u.EmailCI = text.Fold(u.Email)
	return u
}

// setFields builds the $set document for upsert/replace. Optional
// array fields are only written when present so the collection
// validator never sees a null where it expects an array.
func setFields(u models.User, now time.Time) bson.M {
	set := bson.M{
		"name":       u.Name,
		"email":      u.Email,
		"email_ci":   u.EmailCI,
		"updated_at": now,
	}
	if u.Identities != nil {
		set["identities"] = u.Identities
	}
	if u.Editions != nil {
		set["editions"] = u.Editions
	}
	return set
}
