package domain

import "time"

// User represents an authenticated user of the system. Image holds the
// relative path of the stored profile image, empty until one is uploaded.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
