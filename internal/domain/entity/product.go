package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item created by an admin, optionally with an attached file.
type Product struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"desc"`
	MadeIn      string     `json:"madeIn"`
	Price       float64    `json:"price"`
	FileID      *uuid.UUID `json:"fileId,omitempty"`
	ExpireAt    *time.Time `json:"expireAt,omitempty"`
	UserID      uuid.UUID  `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	File  *File `json:"file,omitempty"`
	Owner *User `json:"productOwner,omitempty"`
}
