package seeders

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedSuppliers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'suppliers'...")

	query := `INSERT INTO suppliers (supplier_id, name, city, state, country, email, source_of_supply, specialties)
			  VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
			  ON CONFLICT (supplier_id) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range suppliersData {
		specialties, err := json.Marshal(s.Specialties)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, s.SupplierID, s.Name, s.City, s.State, s.Country, s.Email, s.SourceOfSupply, specialties); err != nil {
			log.Printf("Failed to insert supplier '%s': %v", s.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func seedFreightHandlers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'freight_handlers'...")

	query := `INSERT INTO freight_handlers (freight_handler_id, name, company, country, phone)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (freight_handler_id) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, h := range freightHandlersData {
		if _, err := tx.Exec(ctx, query, h.FreightHandlerID, h.Name, h.Company, h.Country, h.Phone); err != nil {
			log.Printf("Failed to insert freight handler '%s': %v", h.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
