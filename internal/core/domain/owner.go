package domain

import (
	"errors"
	"time"
)

var ErrOwnerNotFound = errors.New("owner not found")
var ErrOwnerExists = errors.New("owner already exists")

// Owner maps a normalized plate number to the registered contact for that
// vehicle. At most one Owner exists per plate.
type Owner struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	PlateNumber string    `json:"plateNumber" bson:"plate_number"`
	OwnerName   string    `json:"ownerName" bson:"owner_name"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Model       string    `json:"model,omitempty" bson:"model,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
