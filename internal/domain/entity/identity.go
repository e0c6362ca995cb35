package entity

import "github.com/google/uuid"

// Identity is the authenticated caller, taken from a verified access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Type   AccountType
}

// IsAdmin reports whether the caller holds the admin account type.
func (i Identity) IsAdmin() bool {
	return i.Type == AccountTypeAdmin
}

// CanAccess reports whether the caller may act on a record owned by ownerID.
func (i Identity) CanAccess(ownerID uuid.UUID) bool {
	return i.IsAdmin() || i.UserID == ownerID
}
