package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single persistent record type of the service. The id is
// assigned by the persistence layer and immutable; createdAt/updatedAt are
// maintained by the repository on every write.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Address     string             `bson:"address" json:"address"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	CompanyName string             `bson:"companyName" json:"companyName"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
