package models

import "time"

// Villa represents a rentable villa record in the database
type Villa struct {
	ID        int64      `json:"id" db:"id"`               // Primary key, assigned by the database
	Name      string     `json:"name" db:"name"`           // Display name
	Details   string     `json:"details" db:"details"`     // Free-text description
	Rate      float64    `json:"rate" db:"rate"`           // Nightly rate
	Sqft      int        `json:"sqft" db:"sqft"`           // Square footage
	Occupancy int        `json:"occupancy" db:"occupancy"` // Maximum occupancy
	ImageURL  string     `json:"imageUrl" db:"image_url"`  // Image reference
	Amenity   string     `json:"amenity" db:"amenity"`     // Free-text amenity list
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}
