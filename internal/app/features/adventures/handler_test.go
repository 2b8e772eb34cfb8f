package adventures

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/metrics"
	"github.com/dalemusser/adventurehub/internal/app/provision"
	"github.com/dalemusser/adventurehub/internal/app/seeds"
	adventurestore "github.com/dalemusser/adventurehub/internal/app/store/adventures"
	userstore "github.com/dalemusser/adventurehub/internal/app/store/users"
	"github.com/dalemusser/adventurehub/internal/domain/models"
	"github.com/dalemusser/adventurehub/internal/testutil"
)

func setup(t *testing.T) (http.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := adventurestore.New(db, "adventures")
	users := userstore.New(db, "users")
	svc := provision.New(db.Client(), users, store, metrics.NopRecorder{}, zap.NewNop())
	h := NewHandler(store, svc, zap.NewNop())
	return Routes(h), testutil.NewFixtures(t, db)
}

func TestServeGet(t *testing.T) {
	router, fx := setup(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	owner := primitive.NewObjectID()
	adventure := fx.CreateAdventure(ctx, owner, "Campfire Stories", models.EditionFamily, 3)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"+adventure.ID.Hex()))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Campfire Stories")
	rec.AssertContains(t, owner.Hex())
}

func TestServeGet_NotFound(t *testing.T) {
	router, _ := setup(t)

	// A well-formed but absent ID and malformed hex both read as not found.
	for _, id := range []string{primitive.NewObjectID().Hex(), "not-a-hex-id"} {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"+id))

		rec.AssertStatus(t, http.StatusNotFound)
		rec.AssertContains(t, "adventure_not_found")
	}
}

func TestHandleProvision(t *testing.T) {
	router, fx := setup(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	user := fx.CreateUser(ctx, "Harper Finch", "harper@example.com")

	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest(http.MethodPost, "/",
		fmt.Sprintf(`{"userId":%q,"editions":["couples"]}`, user.ID.Hex()))
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var result adventurestore.InsertResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	templates, err := seeds.Templates(models.EditionCouples)
	if err != nil {
		t.Fatalf("loading templates: %v", err)
	}
	if result.Inserted != len(templates) {
		t.Errorf("insertedCount: got %d, want %d", result.Inserted, len(templates))
	}
	if len(result.InsertedIDs) != len(templates) {
		t.Errorf("insertedIds: got %d, want %d", len(result.InsertedIDs), len(templates))
	}
}

func TestHandleProvision_Validation(t *testing.T) {
	router, _ := setup(t)

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"not json", `{"userId":`, http.StatusBadRequest, "invalid_body"},
		{"no editions", fmt.Sprintf(`{"userId":%q}`, primitive.NewObjectID().Hex()), http.StatusBadRequest, "missing_editions"},
		{"empty editions", fmt.Sprintf(`{"userId":%q,"editions":[]}`, primitive.NewObjectID().Hex()), http.StatusBadRequest, "missing_editions"},
		{"malformed user id", `{"userId":"nope","editions":["couples"]}`, http.StatusNotFound, "user_not_found"},
		{"bad id with unknown edition", `{"userId":"nope","editions":["deluxe"]}`, http.StatusBadRequest, "unknown_edition"},
		{"absent user", fmt.Sprintf(`{"userId":%q,"editions":["couples"]}`, primitive.NewObjectID().Hex()), http.StatusNotFound, "user_not_found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			req := testutil.NewJSONRequest(http.MethodPost, "/", tc.body)
			router.ServeHTTP(rec, req)

			rec.AssertStatus(t, tc.status)
			rec.AssertContains(t, tc.code)
		})
	}
}

func TestHandleProvision_UnknownEdition(t *testing.T) {
	router, fx := setup(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	user := fx.CreateUser(ctx, "Rowan Bell", "rowan@example.com")

	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest(http.MethodPost, "/",
		fmt.Sprintf(`{"userId":%q,"editions":["couples","deluxe"]}`, user.ID.Hex()))
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "unknown_edition")
	rec.AssertContains(t, "deluxe")
}

func TestHandleProvision_AlreadyOwned(t *testing.T) {
	router, fx := setup(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	user := fx.CreateUser(ctx, "Quinn Ashby", "quinn@example.com", models.EditionCouples)

	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest(http.MethodPost, "/",
		fmt.Sprintf(`{"userId":%q,"editions":["couples"]}`, user.ID.Hex()))
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusConflict)
	rec.AssertContains(t, "edition_owned")
}
