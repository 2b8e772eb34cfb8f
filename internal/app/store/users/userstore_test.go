package userstore

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/adventurehub/internal/domain/models"
	"github.com/dalemusser/adventurehub/internal/testutil"
)

func TestUpsertByEmail_CreatesThenUpdates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "users")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, created, err := store.UpsertByEmail(ctx, models.User{
		Name:  "Jess Barker",
		Email: "jess@example.com",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !created {
		t.Error("expected first upsert to report created")
	}
	if first.ID.IsZero() {
		t.Error("expected an assigned ID")
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	// Same address with different casing must update, not insert.
	second, created, err := store.UpsertByEmail(ctx, models.User{
		Name:  "Jess B",
		Email: "JESS@Example.COM",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Error("expected second upsert to report updated")
	}
	if second.ID != first.ID {
		t.Errorf("expected same document, got %s and %s", first.ID.Hex(), second.ID.Hex())
	}
	if second.Name != "Jess B" {
		t.Errorf("name: got %q, want %q", second.Name, "Jess B")
	}
	if second.Email != "jess@example.com" {
		t.Errorf("email should be normalized, got %q", second.Email)
	}
	if second.CreatedAt.After(second.UpdatedAt) {
		t.Error("created_at should not be after updated_at")
	}
}

func TestUpsertByEmail_StripsMarkupFromName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "users")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, _, err := store.UpsertByEmail(ctx, models.User{
		Name:  "  <b>Sam</b> Reyes ",
		Email: "sam@example.com",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if u.Name != "Sam Reyes" {
		t.Errorf("name: got %q, want %q", u.Name, "Sam Reyes")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "users")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "users")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	seed := fx.CreateUser(ctx, "Avery Cole", "avery@example.com", models.EditionCouples)

	got, err := store.Replace(ctx, seed.ID, models.User{
		Name:     "Avery C",
		Email:    "avery@example.com",
		Editions: []models.Edition{models.EditionCouples, models.EditionFamily},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got.Name != "Avery C" {
		t.Errorf("name: got %q, want %q", got.Name, "Avery C")
	}
	if len(got.Editions) != 2 {
		t.Errorf("editions: got %v, want two entries", got.Editions)
	}

	_, err = store.Replace(ctx, primitive.NewObjectID(), models.User{
		Name:  "Nobody",
		Email: "nobody@example.com",
	})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments for missing user, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "users")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	seed := fx.CreateUser(ctx, "Robin Park", "robin@example.com")

	if err := store.Delete(ctx, seed.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, seed.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected user gone, got %v", err)
	}
	if err := store.Delete(ctx, seed.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments on second delete, got %v", err)
	}
}

func TestAddEditions_UnionsWithoutDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "users")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	seed := fx.CreateUser(ctx, "Casey Lin", "casey@example.com", models.EditionCouples)

	err := store.AddEditions(ctx, seed.ID, []models.Edition{models.EditionCouples, models.EditionFamily})
	if err != nil {
		t.Fatalf("add editions: %v", err)
	}

	got, err := store.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Editions) != 2 {
		t.Fatalf("editions: got %v, want exactly [couples family]", got.Editions)
	}
	if !got.OwnsEdition(models.EditionCouples) || !got.OwnsEdition(models.EditionFamily) {
		t.Errorf("editions: got %v, want both couples and family", got.Editions)
	}

	if err := store.AddEditions(ctx, primitive.NewObjectID(), []models.Edition{models.EditionFamily}); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments for missing user, got %v", err)
	}
}
