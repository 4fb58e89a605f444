package models

import "time"

// User is a landlord account. Password always holds a bcrypt hash and is
// never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Firstname string    `gorm:"type:varchar(100)" json:"firstname"`
	Lastname  string    `gorm:"type:varchar(100)" json:"lastname"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
