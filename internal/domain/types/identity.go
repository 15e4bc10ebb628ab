package types

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a registered signer as held by the identity directory.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	NIF       NIF       `json:"nif"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewIdentity carries the caller-supplied attributes of an identity to register.
type NewIdentity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	NIF       NIF    `json:"nif"`
}
