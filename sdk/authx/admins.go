package authx

import (
	"time"

	"github.com/innoverse/admin/sdk/meta"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin represents a registered administrator of the platform. Admin records
// are seeded out-of-band; this system authenticates against them and updates
// their login statistics, but never creates or deletes them.
type Admin struct {
	meta.TypeMeta `json:",inline" bson:",inline"`
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Username      string             `json:"username" bson:"username"`
	// Email links a delegated external identity to this administrator. It may
	// be empty for admins who only ever authenticate with a username and
	// password.
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	// HashedPassword is never transmitted to clients.
	HashedPassword string     `json:"-" bson:"password"`
	LastLogin      *time.Time `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	LoginCount     int64      `json:"loginCount" bson:"login_count"`
}
