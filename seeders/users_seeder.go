package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"pharma-order-system/pkg/utils"
)

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'users'...")

	query := `INSERT INTO users (user_id, name, email, password, role, team)
			  VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
			  ON CONFLICT (email) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, u := range usersData {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, query, u.UserID, u.Name, u.Email, hash, string(u.Role), u.Team)
		if err != nil {
			log.Printf("Failed to insert user '%s': %v", u.Email, err)
			return err
		}
		if tag.RowsAffected() == 0 {
			log.Printf("    - %s already exists, skipped", u.Email)
		}
	}

	return tx.Commit(ctx)
}
