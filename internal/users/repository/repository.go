package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userhub/user-service/internal/users"
)

// Patch carries the business fields present in an update request. Nil fields
// are left untouched in the stored record.
type Patch struct {
	Name        *string
	Address     *string
	PhoneNumber *string
	CompanyName *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.PhoneNumber == nil && p.CompanyName == nil
}

// Repository defines persistence operations for user records. Timestamps are
// owned by the implementations: Insert sets createdAt and updatedAt to the
// same instant, Update refreshes updatedAt.
type Repository interface {
	List(ctx context.Context) ([]users.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error)
	Insert(ctx context.Context, u *users.User) (*users.User, error)
	Update(ctx context.Context, id primitive.ObjectID, p Patch) (*users.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
