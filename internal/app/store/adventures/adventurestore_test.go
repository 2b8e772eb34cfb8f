package adventurestore

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/adventurehub/internal/domain/models"
	"github.com/dalemusser/adventurehub/internal/testutil"
)

func batchFor(userID primitive.ObjectID, edition models.Edition, names ...string) []models.Adventure {
	out := make([]models.Adventure, 0, len(names))
	for i, name := range names {
		out = append(out, models.Adventure{
			UserID:        userID,
			Name:          name,
			Edition:       edition,
			Order:         i + 1,
			Icons:         []models.Icon{models.IconHome},
			Cost:          []int{1},
			TimeOfDay:     "any",
			Duration:      []int{1},
			DurationUnits: "hours",
		})
	}
	return out
}

func TestInsertBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "adventures")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	res, err := store.InsertBatch(ctx, batchFor(userID, models.EditionCouples, "Stargazing", "Picnic", "Game Night"))
	if err != nil {
		t.Fatalf("insert batch: %v", err)
	}
	if res.Inserted != 3 {
		t.Errorf("inserted: got %d, want 3", res.Inserted)
	}
	if len(res.InsertedIDs) != 3 {
		t.Fatalf("inserted IDs: got %d, want 3", len(res.InsertedIDs))
	}

	// Every returned ID must resolve to a stored document.
	for _, id := range res.InsertedIDs {
		got, err := store.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get %s: %v", id.Hex(), err)
		}
		if got.UserID != userID {
			t.Errorf("user_id: got %s, want %s", got.UserID.Hex(), userID.Hex())
		}
		if got.CreatedAt.IsZero() {
			t.Error("expected created_at to be stamped")
		}
	}
}

func TestInsertBatch_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "adventures")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	res, err := store.InsertBatch(ctx, nil)
	if err != nil {
		t.Fatalf("insert empty batch: %v", err)
	}
	if res.Inserted != 0 || len(res.InsertedIDs) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestListByUser_OrderedAndScoped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "adventures")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	// Insert family before couples so the sort has work to do.
	if _, err := store.InsertBatch(ctx, batchFor(owner, models.EditionFamily, "Zoo Trip", "Bake Off")); err != nil {
		t.Fatalf("seed family: %v", err)
	}
	if _, err := store.InsertBatch(ctx, batchFor(owner, models.EditionCouples, "Stargazing")); err != nil {
		t.Fatalf("seed couples: %v", err)
	}
	if _, err := store.InsertBatch(ctx, batchFor(other, models.EditionCouples, "Not Yours")); err != nil {
		t.Fatalf("seed other user: %v", err)
	}

	got, err := store.ListByUser(ctx, owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("list length: got %d, want 3", len(got))
	}
	wantOrder := []string{"Stargazing", "Zoo Trip", "Bake Off"}
	for i, a := range got {
		if a.Name != wantOrder[i] {
			t.Errorf("position %d: got %q, want %q", i, a.Name, wantOrder[i])
		}
		if a.UserID != owner {
			t.Errorf("position %d owned by %s, want %s", i, a.UserID.Hex(), owner.Hex())
		}
	}
}

func TestListByUser_EmptyIsNotNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "adventures")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.ListByUser(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no adventures, got %d", len(got))
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "adventures")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestDeleteByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "adventures")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	if _, err := store.InsertBatch(ctx, batchFor(owner, models.EditionCouples, "One", "Two")); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	if _, err := store.InsertBatch(ctx, batchFor(other, models.EditionCouples, "Keep")); err != nil {
		t.Fatalf("seed other: %v", err)
	}

	deleted, err := store.DeleteByUser(ctx, owner)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted: got %d, want 2", deleted)
	}

	remaining, err := store.ListByUser(ctx, other)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("other user's adventures should survive, got %d", len(remaining))
	}
}
