package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// profile collections, searched in this fixed priority order when
// resolving an actor
const (
	IndividualCollection   = "individuals"
	NGOCollection          = "ngos"
	SocialWorkerCollection = "social_workers"
)

// actor roles
const (
	RoleIndividual   = "individual"
	RoleNGO          = "ngo"
	RoleSocialWorker = "social_worker"
)

// Individual - profile of a single person
type Individual struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Identity  string             `bson:"identity" json:"identity"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// NGO - profile of a registered organization
type NGO struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Identity           string             `bson:"identity" json:"identity"`
	Name               string             `bson:"name" json:"name"`
	RegistrationNumber string             `bson:"registration_number" json:"registration_number"`
	ContactPerson      string             `bson:"contact_person" json:"contact_person"`
	Phone              string             `bson:"phone" json:"phone"`
	Address            string             `bson:"address" json:"address"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// SocialWorker - profile of a social worker attached to an organization
type SocialWorker struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Identity     string             `bson:"identity" json:"identity"`
	Name         string             `bson:"name" json:"name"`
	Organization string             `bson:"organization" json:"organization"`
	EmployeeID   string             `bson:"employee_id" json:"employee_id"`
	Phone        string             `bson:"phone" json:"phone"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Actor - a resolved external identity with its role tag
type Actor struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
