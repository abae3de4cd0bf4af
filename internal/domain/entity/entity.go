// Package entity defines the persisted records of the retail schema.
package entity

// Entity is implemented by every persisted record with an integer identity.
// SetID exists so the repository can assign the database-generated key on insert.
type Entity interface {
	EntityID() int64
	SetID(int64)
}
