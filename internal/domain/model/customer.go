package model

// Customer is a reference to the owning customer of one or more credit
// applications. The policy tier is NOT stored here: it is derived from the
// latest score every time a decision is made.
type Customer struct {
	CustomerNumber string
	FullName       string
	Email          string
}
