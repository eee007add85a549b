package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/villastay/villa-api/internal/models"
)

// VillaNumberRepository is the gateway for villa numbers plus an update
// operation that stamps the record's update timestamp. Validating VillaID
// against the villa gateway is the caller's job, both on create and update.
type VillaNumberRepository struct {
	*Repository[models.VillaNumber]
}

func NewVillaNumberRepository(db *sqlx.DB) *VillaNumberRepository {
	return &VillaNumberRepository{
		Repository: New(db, Config[models.VillaNumber]{
			Table: "villa_numbers",
			Insert: `
				INSERT INTO villa_numbers (villa_no, villa_id, special_details, created_at, updated_at)
				VALUES (:villa_no, :villa_id, :special_details, :created_at, :updated_at)
			`,
			Update: `
				UPDATE villa_numbers
				SET villa_id = :villa_id,
				    special_details = :special_details,
				    updated_at = :updated_at
				WHERE villa_no = :villa_no
			`,
			Delete: `DELETE FROM villa_numbers WHERE villa_no = :villa_no`,
			Relations: map[string]RelationLoader[models.VillaNumber]{
				"Villa": loadVillaRelation(db),
			},
		}),
	}
}

// Update stamps UpdatedAt, issues a full replace, commits and returns the
// stamped record.
func (r *VillaNumberRepository) Update(ctx context.Context, number *models.VillaNumber) (*models.VillaNumber, error) {
	now := time.Now()
	number.UpdatedAt = &now
	if err := r.NewSession().Update(ctx, number); err != nil {
		return nil, err
	}
	return number, nil
}

// loadVillaRelation attaches the owning Villa to each villa number in one
// extra query.
func loadVillaRelation(db *sqlx.DB) RelationLoader[models.VillaNumber] {
	return func(ctx context.Context, recs []models.VillaNumber) error {
		if len(recs) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(recs))
		for _, rec := range recs {
			ids = append(ids, rec.VillaID)
		}

		query, args, err := sqlx.In(`SELECT * FROM villas WHERE id IN (?)`, ids)
		if err != nil {
			return err
		}
		query = db.Rebind(query)

		var villas []models.Villa
		if err := db.SelectContext(ctx, &villas, query, args...); err != nil {
			return err
		}

		byID := make(map[int64]models.Villa, len(villas))
		for _, v := range villas {
			byID[v.ID] = v
		}
		for i := range recs {
			if v, ok := byID[recs[i].VillaID]; ok {
				villa := v
				recs[i].Villa = &villa
			}
		}
		return nil
	}
}
