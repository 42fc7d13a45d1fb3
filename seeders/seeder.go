package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers creates the default accounts, one per role.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Seeding users...")
	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("❌ Failed to seed users: %v", err)
	}
	log.Println("✅ Users seeded")
}

// SeedMasterData fills suppliers and freight handlers.
func SeedMasterData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Seeding master data...")
	if err := seedSuppliers(ctx, db); err != nil {
		log.Fatalf("❌ Failed to seed suppliers: %v", err)
	}
	if err := seedFreightHandlers(ctx, db); err != nil {
		log.Fatalf("❌ Failed to seed freight handlers: %v", err)
	}
	log.Println("✅ Master data seeded")
}
