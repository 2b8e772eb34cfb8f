// Package provision implements the edition purchase workflow: validate
// the requested editions, materialize their seed adventures for the
// user, persist them in one batch, and record ownership.
package provision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/adventurehub/internal/app/metrics"
	"github.com/dalemusser/adventurehub/internal/app/seeds"
	adventurestore "github.com/dalemusser/adventurehub/internal/app/store/adventures"
	userstore "github.com/dalemusser/adventurehub/internal/app/store/users"
	"github.com/dalemusser/adventurehub/internal/app/system/txn"
	"github.com/dalemusser/adventurehub/internal/domain/models"
)

// ErrUserNotFound is returned when the target user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrNothingCreated is returned when the batch insert reported zero
// effect; the user's ownership is left untouched.
var ErrNothingCreated = errors.New("no adventures were created")

// UnknownEditionsError lists every requested name that does not map to
// a known edition.
type UnknownEditionsError struct {
	Names []string
}

func (e *UnknownEditionsError) Error() string {
	return fmt.Sprintf("unknown editions: %s", strings.Join(e.Names, ", "))
}

// OwnedEditionsError lists every requested edition the user already
// owns. The whole request is rejected; nothing is partially
// provisioned.
type OwnedEditionsError struct {
	Editions []models.Edition
}

func (e *OwnedEditionsError) Error() string {
	names := make([]string, 0, len(e.Editions))
	for _, ed := range e.Editions {
		names = append(names, string(ed))
	}
	return fmt.Sprintf("editions already owned: %s", strings.Join(names, ", "))
}

// Service runs the provisioning workflow against the two stores.
type Service struct {
	client     *mongo.Client
	users      *userstore.Store
	adventures *adventurestore.Store
	rec        metrics.Recorder
	log        *zap.Logger
}

// New builds a Service. rec may be metrics.NopRecorder{} when metrics
// are not wired (tests).
func New(client *mongo.Client, users *userstore.Store, adventures *adventurestore.Store, rec metrics.Recorder, logger *zap.Logger) *Service {
	return &Service{
		client:     client,
		users:      users,
		adventures: adventures,
		rec:        rec,
		log:        logger,
	}
}

// Provision grants the user the requested editions.
//
// Validation happens before any write, in order: every requested name
// must map to a known edition, the user must exist (a malformed ID
// reads as a missing user), and none of the requested editions may
// already be owned. Failures report every offending entry, not just
// the first.
//
// The adventure insert and the ownership update run inside a Mongo
// transaction when the deployment supports one. On standalone servers
// the two writes run sequentially; an ownership failure after a
// successful insert then leaves adventures without recorded ownership,
// which is logged distinctly for operators to reconcile.
func (s *Service) Provision(ctx context.Context, userID string, requested []string) (adventurestore.InsertResult, error) {
	start := time.Now()

	editions, err := parseEditions(requested)
	if err != nil {
		s.rec.RecordProvisionFailure("unknown_edition")
		return adventurestore.InsertResult{}, err
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		s.rec.RecordProvisionFailure("user_not_found")
		return adventurestore.InsertResult{}, ErrUserNotFound
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.rec.RecordProvisionFailure("user_not_found")
			return adventurestore.InsertResult{}, ErrUserNotFound
		}
		return adventurestore.InsertResult{}, fmt.Errorf("loading user: %w", err)
	}

	var owned []models.Edition
	for _, e := range editions {
		if user.OwnsEdition(e) {
			owned = append(owned, e)
		}
	}
	if len(owned) > 0 {
		s.rec.RecordProvisionFailure("already_owned")
		return adventurestore.InsertResult{}, &OwnedEditionsError{Editions: owned}
	}

	batch, err := materialize(id, editions)
	if err != nil {
		return adventurestore.InsertResult{}, err
	}

	result, err := s.persist(ctx, id, editions, batch)
	if err != nil {
		s.rec.RecordProvisionFailure(failureReason(err))
		return result, err
	}

	s.rec.RecordProvisionSuccess(result.Inserted)
	s.rec.RecordProvisionLatency(time.Since(start))
	s.log.Info("editions provisioned",
		zap.String("user_id", userID),
		zap.Int("editions", len(editions)),
		zap.Int("adventures", result.Inserted))
	return result, nil
}

// parseEditions maps the requested names onto the closed enumeration,
// case-insensitively, collecting every name that does not map. Repeated
// names collapse to one; the request is a set.
func parseEditions(requested []string) ([]models.Edition, error) {
	var editions []models.Edition
	var invalid []string
	seen := make(map[models.Edition]bool, len(requested))

	for _, name := range requested {
		e, err := models.ParseEdition(name)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		if !seen[e] {
			seen[e] = true
			editions = append(editions, e)
		}
	}

	if len(invalid) > 0 {
		return nil, &UnknownEditionsError{Names: invalid}
	}
	return editions, nil
}

// materialize builds one adventure per seed template, stamping in the
// owner and edition. Template order within each edition and the order
// of editions as requested are both preserved.
func materialize(userID primitive.ObjectID, editions []models.Edition) ([]models.Adventure, error) {
	var batch []models.Adventure
	for _, edition := range editions {
		templates, err := seeds.Templates(edition)
		if err != nil {
			return nil, err
		}
		for _, tpl := range templates {
			batch = append(batch, models.Adventure{
				UserID:        userID,
				Name:          tpl.Name,
				Edition:       edition,
				Order:         tpl.Order,
				Icons:         tpl.Icons,
				Cost:          tpl.Cost,
				TimeOfDay:     tpl.TimeOfDay,
				Duration:      tpl.Duration,
				DurationUnits: tpl.DurationUnits,
				Completed:     tpl.Completed,
				Photo:         tpl.Photo,
				Notes:         tpl.Notes,
			})
		}
	}
	return batch, nil
}

// persist runs the insert and the ownership update, transactionally
// when possible.
func (s *Service) persist(ctx context.Context, userID primitive.ObjectID, editions []models.Edition, batch []models.Adventure) (adventurestore.InsertResult, error) {
	var result adventurestore.InsertResult

	txnErr := txn.WithTransaction(ctx, s.client, func(sc mongo.SessionContext) error {
		var err error
		result, err = s.insertAndRecord(sc, userID, editions, batch)
		return err
	})
	if txnErr == nil {
		return result, nil
	}
	if !txn.IsNotSupported(txnErr) {
		return result, txnErr
	}

	// Standalone server: no transactions. Run the two writes
	// sequentially, accepting the window between them.
	result, err := s.insertAndRecord(ctx, userID, editions, batch)
	if err != nil && result.Inserted > 0 {
		// Adventures exist but ownership was not recorded. There is no
		// automatic reconciliation; flag it loudly.
		s.log.Error("ownership update failed after insert",
			zap.String("user_id", userID.Hex()),
			zap.Int("adventures_inserted", result.Inserted),
			zap.Error(err))
	}
	return result, err
}

// insertAndRecord runs the two writes. It records no metrics: when
// transactions are unsupported the first attempt fails by design and
// is retried sequentially, so only the final outcome may be counted.
func (s *Service) insertAndRecord(ctx context.Context, userID primitive.ObjectID, editions []models.Edition, batch []models.Adventure) (adventurestore.InsertResult, error) {
	result, err := s.adventures.InsertBatch(ctx, batch)
	if err != nil {
		return result, fmt.Errorf("inserting adventures (%d of %d written): %w", result.Inserted, len(batch), err)
	}
	if result.Inserted == 0 {
		return result, ErrNothingCreated
	}

	if err := s.users.AddEditions(ctx, userID, editions); err != nil {
		return result, &ownershipUpdateError{err: err}
	}
	return result, nil
}

// ownershipUpdateError marks a failure in the ownership write after
// the adventure insert, so the failure metric can name the stage.
type ownershipUpdateError struct {
	err error
}

func (e *ownershipUpdateError) Error() string {
	return fmt.Sprintf("recording edition ownership: %v", e.err)
}

func (e *ownershipUpdateError) Unwrap() error { return e.err }

func failureReason(err error) string {
	var ownErr *ownershipUpdateError
	if errors.As(err, &ownErr) {
		return "ownership_update_failed"
	}
	return "insert_failed"
}
