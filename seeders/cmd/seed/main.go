package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"pharma-order-system/pkg/config"
	"pharma-order-system/pkg/database/postgresql"
	"pharma-order-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Database seeders")
	log.Println("======================================================")

	runUsers := flag.Bool("users", false, "Seed default users (one per role)")
	runMaster := flag.Bool("master", false, "Seed suppliers and freight handlers")
	runAll := flag.Bool("all", false, "Run every seeder (same as -users -master)")
	migrate := flag.Bool("migrate", true, "Apply migrations before seeding")
	flag.Parse()

	if !*runUsers && !*runMaster && !*runAll {
		log.Println("❌ No seeder selected.")
		log.Println("")
		log.Println("Flags:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Examples:")
		log.Println("  go run ./seeders/cmd/seed -users")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	logger := zap.NewNop()
	dbPool, err := postgresql.ConnectDB(cfg.Postgres.DSN, logger)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer dbPool.Close()

	if *migrate {
		if err := postgresql.Migrate(context.Background(), dbPool, logger); err != nil {
			log.Fatalf("❌ Migrations failed: %v", err)
		}
	}

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
		log.Println("======================================================")
	}
	if *runAll || *runMaster {
		seeders.SeedMasterData(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Seeding finished.")
}
