package users

import "time"

// User is a registered household member. The password hash never leaves
// this package's consumers in an HTTP response.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
