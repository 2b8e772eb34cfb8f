// internal/domain/models/adventure.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adventure is one provisioned activity owned by a user. Adventures are
// materialized in bulk from seed templates when a user buys an edition;
// they are read individually afterwards but never edited through this
// API.
type Adventure struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"userId"`
	Name          string             `bson:"name" json:"name"`
	Edition       Edition            `bson:"edition" json:"edition"`
	Order         int                `bson:"order" json:"order"`
	Icons         []Icon             `bson:"icons" json:"icons"`
	Cost          []int              `bson:"cost" json:"cost"`
	TimeOfDay     string             `bson:"timeOfDay" json:"timeOfDay"`
	Duration      []int              `bson:"duration" json:"duration"`
	DurationUnits string             `bson:"durationUnits" json:"durationUnits"`
	Completed     bool               `bson:"completed" json:"completed"`
	Photo         string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
