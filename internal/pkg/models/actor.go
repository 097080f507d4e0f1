package models

import "github.com/google/uuid"

// ActorRole identifies on whose behalf an operation runs
type ActorRole string

const (
	ActorRequester ActorRole = "requester"
	ActorProvider  ActorRole = "provider"
	ActorAdmin     ActorRole = "admin"
)

// Valid reports whether the role is one of the known roles
func (r ActorRole) Valid() bool {
	switch r {
	case ActorRequester, ActorProvider, ActorAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of a core operation
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role ActorRole `json:"role"`
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == ActorAdmin
}
