package models

import "time"

// VillaNumber represents a bookable unit inside a villa.
// VillaID must reference an existing Villa; the check happens in the
// handler before persistence, not as a storage constraint.
type VillaNumber struct {
	VillaNo        int64      `json:"villaNo" db:"villa_no"` // Primary key, supplied by the client
	VillaID        int64      `json:"villaId" db:"villa_id"`
	SpecialDetails string     `json:"specialDetails" db:"special_details"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty" db:"updated_at"`

	// Villa is populated when the "Villa" relation is requested on a read.
	Villa *Villa `json:"villa,omitempty" db:"-"`
}
