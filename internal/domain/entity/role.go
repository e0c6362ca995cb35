// Package entity contains the core business objects of the project.
package entity

// AccountType is the closed set of roles a user account can have.
type AccountType string

const (
	// AccountTypeAdmin may manage products and see every order.
	AccountTypeAdmin AccountType = "admin"
	// AccountTypeCustomer is a regular shopper.
	AccountTypeCustomer AccountType = "customer"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAdmin, AccountTypeCustomer:
		return true
	default:
		return false
	}
}
