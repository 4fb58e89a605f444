package models

import "time"

// Property status values. Only available properties are visible to the
// public search endpoints.
const (
	StatusAvailable   = "available"
	StatusRented      = "rented"
	StatusMaintenance = "maintenance"
)

// Property is a boarding listing owned by a single user.
//
// Images is the raw stored manifest, not the decoded list: legacy rows may
// contain a JSON array, a single bare filename, or NULL, so the column
// stays longtext and all interpretation happens in the image manifest
// codec. It is hidden from JSON; responses carry the decoded slice
// instead (see services.PropertyView).
type Property struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Address    string    `gorm:"type:varchar(255)" json:"address"`
	City       string    `gorm:"type:varchar(100);index" json:"city"`
	State      string    `gorm:"type:varchar(100)" json:"state"`
	ZipCode    string    `gorm:"column:zip_code;type:varchar(20)" json:"zip_code"`
	Price      float64   `json:"price"`
	Bedrooms   int       `gorm:"default:1" json:"bedrooms"`
	Bathrooms  int       `gorm:"default:1" json:"bathrooms"`
	MaxPersons int       `gorm:"column:max_persons;default:1" json:"max_persons"`
	Images     *string   `gorm:"column:images;type:longtext" json:"-"`
	Status     string    `gorm:"type:varchar(20);default:available" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
