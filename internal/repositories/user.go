package repositories

import (
	"github.com/jmoiron/sqlx"
	"github.com/villastay/villa-api/internal/models"
)

// NewLocalUserRepository returns the gateway for stored user records.
func NewLocalUserRepository(db *sqlx.DB) *Repository[models.LocalUser] {
	return New(db, Config[models.LocalUser]{
		Table: "local_users",
		Insert: `
			INSERT INTO local_users (username, password, name, role)
			VALUES (:username, :password, :name, :role)
			RETURNING id
		`,
		Update: `
			UPDATE local_users
			SET username = :username,
			    password = :password,
			    name = :name,
			    role = :role
			WHERE id = :id
		`,
		Delete: `DELETE FROM local_users WHERE id = :id`,
		SetKey: func(u *models.LocalUser, key int64) { u.ID = key },
	})
}
