package models

import "time"

// User is the portal's identity record. Email is the login name and is
// unique; Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
}
