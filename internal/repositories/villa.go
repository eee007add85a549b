package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/villastay/villa-api/internal/models"
)

// VillaRepository is the gateway for villas plus an update operation that
// stamps the record's update timestamp.
type VillaRepository struct {
	*Repository[models.Villa]
}

func NewVillaRepository(db *sqlx.DB) *VillaRepository {
	return &VillaRepository{
		Repository: New(db, Config[models.Villa]{
			Table: "villas",
			Insert: `
				INSERT INTO villas (name, details, rate, sqft, occupancy, image_url, amenity, created_at, updated_at)
				VALUES (:name, :details, :rate, :sqft, :occupancy, :image_url, :amenity, :created_at, :updated_at)
				RETURNING id
			`,
			Update: `
				UPDATE villas
				SET name = :name,
				    details = :details,
				    rate = :rate,
				    sqft = :sqft,
				    occupancy = :occupancy,
				    image_url = :image_url,
				    amenity = :amenity,
				    updated_at = :updated_at
				WHERE id = :id
			`,
			Delete: `DELETE FROM villas WHERE id = :id`,
			SetKey: func(v *models.Villa, key int64) { v.ID = key },
		}),
	}
}

// Update stamps UpdatedAt, issues a full replace, commits and returns the
// stamped record.
func (r *VillaRepository) Update(ctx context.Context, villa *models.Villa) (*models.Villa, error) {
	now := time.Now()
	villa.UpdatedAt = &now
	if err := r.NewSession().Update(ctx, villa); err != nil {
		return nil, err
	}
	return villa, nil
}
