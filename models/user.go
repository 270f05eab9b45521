package models

import "time"

// Gender is the catalog/analysis gender axis.
type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderUnspecified Gender = "Unspecified"
)

// User represents a registered user in the durable registry.
type User struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Password      string    `bson:"password" json:"-"` // bcrypt hash, never returned
	PhotoURL      string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	PhotoUploaded bool      `bson:"photo_uploaded" json:"photo_uploaded"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
