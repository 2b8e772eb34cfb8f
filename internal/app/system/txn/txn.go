// Package txn runs multi-write operations inside a MongoDB transaction
// when the deployment supports one.
//
// Transactions need a replica set or mongos; standalone servers reject
// them. Callers use IsNotSupported to detect that case and fall back to
// sequential writes.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// codes MongoDB returns when a transaction cannot be used on this
// deployment.
var notSupportedCodes = map[int32]bool{
	20:  true, // IllegalOperation (not a replica set member)
	51:  true, // transaction numbers not allowed
	263: true, // operation not permitted in transaction
}

// WithTransaction runs fn inside a session transaction, retrying per
// the driver's built-in commit/abort semantics.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(mongo.SessionContext) error) error {
	sess, err := client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// IsNotSupported reports whether err indicates the server cannot run
// transactions (standalone deployment, old wire version, or session
// restrictions), as opposed to the transaction itself failing.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return notSupportedCodes[ce.Code]
	}

	// Some drivers and proxies flatten the code into text. Require two
	// independent keywords so ordinary transaction failures don't match.
	s := strings.ToLower(err.Error())
	hits := 0
	for _, kw := range []string{"transaction", "session", "replica set", "not supported", "illegal operation"} {
		if strings.Contains(s, kw) {
			hits++
		}
	}
	return hits >= 2
}
