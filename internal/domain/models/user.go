// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity records an external login linked to a user. Identities are
// issued by the identity provider and stored verbatim; this service
// never authenticates against them.
type Identity struct {
	Connection string `bson:"connection" json:"connection"`
	IsSocial   bool   `bson:"isSocial" json:"isSocial"`
	Provider   string `bson:"provider" json:"provider"`
	UserID     int    `bson:"user_id" json:"user_id"`
}

// User is an account that can own editions of adventures.
//
// Email is the natural secondary key: creation upserts on the folded
// email (EmailCI), so two documents never share an address.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	EmailCI    string             `bson:"email_ci" json:"-"` // lowercase, diacritics-stripped
	Identities []Identity         `bson:"identities,omitempty" json:"identities,omitempty"`
	Editions   []Edition          `bson:"editions,omitempty" json:"editions,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// OwnsEdition reports whether the user already owns the given edition.
func (u *User) OwnsEdition(e Edition) bool {
	for _, owned := range u.Editions {
		if owned == e {
			return true
		}
	}
	return false
}
