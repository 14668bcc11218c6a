package authx

import (
	"context"
	"time"

	"github.com/innoverse/admin/sdk/authx"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminsStore is an interface for components that implement Admin persistence
// concerns. Admin records are seeded out-of-band, so there are no create or
// delete operations.
type AdminsStore interface {
	// GetByCredentials retrieves the admin whose username AND hashed password
	// both match exactly. No distinction is made between an unknown username
	// and a wrong password.
	GetByCredentials(
		ctx context.Context,
		username string,
		hashedPassword string,
	) (authx.Admin, error)
	// GetByEmail retrieves the admin linked to the provided email address.
	GetByEmail(ctx context.Context, email string) (authx.Admin, error)
	// UpdateLoginStats stamps the admin's last login time and increments
	// their login count.
	UpdateLoginStats(
		ctx context.Context,
		id primitive.ObjectID,
		when time.Time,
	) error
}
