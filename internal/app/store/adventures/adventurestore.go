package adventurestore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dalemusser/adventurehub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// GetByID loads an adventure by ObjectID. Returns mongo.ErrNoDocuments
// when no adventure matches.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Adventure, error) {
	var a models.Adventure
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByUser returns every adventure owned by the user, ordered by
// edition then template order.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Adventure, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "edition", Value: 1},
		{Key: "order", Value: 1},
	})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	adventures := []models.Adventure{}
	if err := cur.All(ctx, &adventures); err != nil {
		return nil, err
	}
	return adventures, nil
}

// InsertResult reports what a batch insert actually wrote. The store
// does not guarantee full batch atomicity, so Inserted can be smaller
// than the batch when a write error interrupts it.
type InsertResult struct {
	Inserted    int                  `json:"insertedCount"`
	InsertedIDs []primitive.ObjectID `json:"insertedIds"`
}

// InsertBatch inserts adventures in order as one batch. The insert is
// ordered so documents land in template order; on a write error the
// result still reports how many made it in.
func (s *Store) InsertBatch(ctx context.Context, adventures []models.Adventure) (InsertResult, error) {
	if len(adventures) == 0 {
		return InsertResult{}, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(adventures))
	for i := range adventures {
		adventures[i].ID = primitive.NewObjectID()
		adventures[i].CreatedAt = now
		docs = append(docs, adventures[i])
	}

	res, err := s.c.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))

	var out InsertResult
	if res != nil {
		out.Inserted = len(res.InsertedIDs)
		for _, raw := range res.InsertedIDs {
			if id, ok := raw.(primitive.ObjectID); ok {
				out.InsertedIDs = append(out.InsertedIDs, id)
			}
		}
	}
	// On a BulkWriteException the result above still reports the
	// documents written before the failing one.
	return out, err
}

// DeleteByUser removes every adventure owned by the user. Returns the
// number deleted.
func (s *Store) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
