package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/adventurehub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user owning the given editions and returns
// it with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string, editions ...models.Edition) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		EmailCI:   text.Fold(email),
		Editions:  editions,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdventure inserts a minimal valid adventure for the user and
// returns it with its generated ID.
func (f *Fixtures) CreateAdventure(ctx context.Context, userID primitive.ObjectID, name string, edition models.Edition, order int) models.Adventure {
	f.t.Helper()

	adventure := models.Adventure{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Name:          name,
		Edition:       edition,
		Order:         order,
		Icons:         []models.Icon{models.IconHome},
		Cost:          []int{1},
		TimeOfDay:     "any",
		Duration:      []int{1},
		DurationUnits: "hours",
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := f.db.Collection("adventures").InsertOne(ctx, adventure); err != nil {
		f.t.Fatalf("failed to create test adventure: %v", err)
	}
	return adventure
}
