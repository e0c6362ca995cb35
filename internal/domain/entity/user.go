// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and own tasks and orders.
type User struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"fname"`
	LastName  string      `json:"lname"`
	Email     string      `json:"email"`
	Age       *int        `json:"age,omitempty"`
	Password  string      `json:"-"` // bcrypt hash, never serialized
	Type      AccountType `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
