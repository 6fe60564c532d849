// Package entity contains the core business objects of the project.
package entity

// Address is the postal part of a place. Every field is optional at this layer.
type Address struct {
	Label      string // A user-defined label, e.g., "Home", "Office".
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// IsZero reports whether no address field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}
