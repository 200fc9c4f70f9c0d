package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WaitlistCollection is the store collection waitlist entries live in.
const WaitlistCollection = "waitlist"

// WaitlistEntry is a signup document in the waitlist collection.
// Email carries no uniqueness constraint; duplicate signups are accepted.
// CreatedAt is nullable because documents written by earlier versions of the
// backend may not carry it.
type WaitlistEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	CreatedAt *time.Time         `bson:"created_at,omitempty" json:"created_at"`
}
