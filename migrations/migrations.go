package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"scorecard/config"

	_ "github.com/lib/pq"
)

// Applies migrations/<n>.sql in order, starting after the version recorded in the schema.
// Run from the repository root.
func main() {
	cfg := config.Env()
	db, err := sql.Open("postgres", config.Dsn(cfg))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	version, err := getMigrationVersion(db, cfg.DatabaseSchema)
	if err != nil {
		log.Fatal(err)
	}

	for {
		err = migrateUp(db, version+1)
		if err != nil {
			break
		}
		version++
	}
	fmt.Printf("Schema %s is at version %d\n", cfg.DatabaseSchema, version)
}

func migrateUp(db *sql.DB, version int) error {
	file, err := os.ReadFile(fmt.Sprintf("migrations/%d.sql", version))
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(string(file)); err != nil {
		_ = tx.Rollback()
		log.Fatalf("error executing migration %d: %v", version, err)
	}
	if _, err = tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		_ = tx.Rollback()
		log.Fatalf("error updating migration version: %v", err)
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	fmt.Printf("Migrated to version %d\n", version)
	return nil
}

func getMigrationVersion(db *sql.DB, schema string) (version int, err error) {
	if _, err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s;", schema)); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		err := generateMigrationTable(db)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	return err
}
