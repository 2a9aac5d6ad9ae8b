// Package users holds the server-side user store and credential
// verification. The store is an in-memory mock seeded with development
// accounts; it is deliberately not backed by a database.
package users

// User is an account in the user store.
type User struct {
	Username       string
	Email          string
	FullName       string
	Disabled       bool
	HashedPassword string
}
