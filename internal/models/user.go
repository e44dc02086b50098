// Package models defines the records persisted by StockKeeper.
package models

// User is an account able to log in. Password holds the encoded credential
// produced by the configured password encoder, which is the raw password
// when the plain encoding is used.
type User struct {
	ID       int64
	Username string
	Password string
}
